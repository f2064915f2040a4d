package library

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"citekit/internal/citekey"

	_ "modernc.org/sqlite"
)

// testPub is one publication fixture row. Empty strings become NULL so
// fixtures also exercise NULL scanning.
type testPub struct {
	authorYear string
	attributed string
	canonical  string
	doi        string
	base       string
	date       string
	pdfPaths   []string
}

// setupTestLibrary creates a Papers2-shaped database seeded with pubs
// and opens it as a Library.
func setupTestLibrary(t *testing.T, pubs []testPub) *Library {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "Database.papersdb")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to create test DB: %v", err)
	}
	defer db.Close()

	schema := `
		CREATE TABLE Publication (
			author_year_string TEXT,
			attributed_title   TEXT,
			canonical_title    TEXT,
			doi                TEXT,
			citekey_base       TEXT,
			publication_date   TEXT
		);
		CREATE TABLE PDF (
			object_id INTEGER,
			Path      TEXT
		);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	for _, pub := range pubs {
		res, err := db.Exec(`
			INSERT INTO Publication (author_year_string, attributed_title,
				canonical_title, doi, citekey_base, publication_date)
			VALUES (?, ?, ?, ?, ?, ?)`,
			nullable(pub.authorYear), nullable(pub.attributed), nullable(pub.canonical),
			nullable(pub.doi), nullable(pub.base), nullable(pub.date))
		if err != nil {
			t.Fatalf("Failed to insert publication: %v", err)
		}
		rowID, err := res.LastInsertId()
		if err != nil {
			t.Fatalf("Failed to get inserted row id: %v", err)
		}
		for _, path := range pub.pdfPaths {
			if _, err := db.Exec(`INSERT INTO PDF (object_id, Path) VALUES (?, ?)`, rowID, path); err != nil {
				t.Fatalf("Failed to insert attachment: %v", err)
			}
		}
	}

	lib, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open library: %v", err)
	}
	t.Cleanup(func() { lib.Close() })
	return lib
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func TestOpenMissingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "Database.papersdb")

	_, err := Open(dbPath)
	if err == nil {
		t.Fatal("Open() succeeded on a missing database")
	}
	// Opening must not have created the file.
	if _, statErr := os.Stat(dbPath); !os.IsNotExist(statErr) {
		t.Errorf("Open() left a file behind at %s", dbPath)
	}
}

func TestList(t *testing.T) {
	lib := setupTestLibrary(t, []testPub{
		{
			authorYear: "Wright (1931)",
			attributed: "Evolution in Mendelian populations",
			canonical:  "evolution in mendelian populations",
			base:       "wright",
			date:       "991931010100000000",
		},
		{
			authorYear: "Smith (2020)",
			attributed: "A Study of Things",
			canonical:  "a study of things",
			doi:        "10.1234/xyz",
			base:       "smith",
			date:       "992020060100000000",
		},
	})

	entries, skipped, err := lib.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if skipped != 0 {
		t.Errorf("List() skipped = %d, want 0", skipped)
	}
	if len(entries) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(entries))
	}

	// Newest store rows come first.
	doiHash, _ := citekey.DOIHash("10.1234/xyz")
	titleHash, _ := citekey.TitleHash("evolution in mendelian populations")
	want := []Entry{
		{Label: "Smith (2020) A Study of Things", Citekey: "smith:2020" + doiHash},
		{Label: "Wright (1931) Evolution in Mendelian populations", Citekey: "wright:1931" + titleHash},
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestListSkipsUnkeyable(t *testing.T) {
	lib := setupTestLibrary(t, []testPub{
		// Date too short to hold a year.
		{authorYear: "A (?)", attributed: "t", canonical: "t", base: "a", date: "9920"},
		// No citekey base.
		{authorYear: "B (2020)", attributed: "t", canonical: "t", date: "992020060100000000"},
		// Neither DOI nor canonical title.
		{authorYear: "C (2020)", attributed: "t", base: "c", date: "992020060100000000"},
		// Keyable.
		{authorYear: "D (2020)", attributed: "t", canonical: "t", base: "d", date: "992020060100000000"},
	})

	entries, skipped, err := lib.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if skipped != 3 {
		t.Errorf("List() skipped = %d, want 3", skipped)
	}
	if len(entries) != 1 {
		t.Fatalf("List() returned %d entries, want 1", len(entries))
	}
	if entries[0].Label != "D (2020) t" {
		t.Errorf("surviving entry = %+v", entries[0])
	}
}

func TestFindPDFByDOIHash(t *testing.T) {
	lib := setupTestLibrary(t, []testPub{
		{
			authorYear: "Smith (2020)",
			attributed: "A Study of Things",
			canonical:  "a study of things",
			doi:        "10.1234/xyz",
			base:       "smith",
			date:       "992020060100000000",
			pdfPaths:   []string{"Articles/2020/Smith.pdf"},
		},
	})

	doiHash, _ := citekey.DOIHash("10.1234/xyz")
	got, err := lib.FindPDF("smith:2020" + doiHash)
	if err != nil {
		t.Fatalf("FindPDF() error = %v", err)
	}
	if got != "Articles/2020/Smith.pdf" {
		t.Errorf("FindPDF() = %q, want %q", got, "Articles/2020/Smith.pdf")
	}
}

func TestFindPDFByTitleHash(t *testing.T) {
	lib := setupTestLibrary(t, []testPub{
		{
			authorYear: "Jones (2019)",
			attributed: "Recombination in RNA viruses",
			canonical:  "recombination in rna viruses",
			base:       "jones",
			date:       "992019010100000000",
			pdfPaths:   []string{"Articles/2019/Jones.pdf"},
		},
	})

	titleHash, _ := citekey.TitleHash("recombination in rna viruses")
	got, err := lib.FindPDF("jones:2019" + titleHash)
	if err != nil {
		t.Fatalf("FindPDF() error = %v", err)
	}
	if got != "Articles/2019/Jones.pdf" {
		t.Errorf("FindPDF() = %q, want %q", got, "Articles/2019/Jones.pdf")
	}
}

func TestFindPDFSkipsUnattachedDuplicate(t *testing.T) {
	// Two records of the same work: the first matches the hash but has
	// no attachment, so resolution continues to the second.
	lib := setupTestLibrary(t, []testPub{
		{
			canonical: "a study of things",
			doi:       "10.1234/xyz",
			base:      "smith",
			date:      "992020060100000000",
		},
		{
			canonical: "a study of things",
			doi:       "10.1234/xyz",
			base:      "smith",
			date:      "992020010100000000",
			pdfPaths:  []string{"Articles/2020/SmithDup.pdf"},
		},
	})

	doiHash, _ := citekey.DOIHash("10.1234/xyz")
	got, err := lib.FindPDF("smith:2020" + doiHash)
	if err != nil {
		t.Fatalf("FindPDF() error = %v", err)
	}
	if got != "Articles/2020/SmithDup.pdf" {
		t.Errorf("FindPDF() = %q, want %q", got, "Articles/2020/SmithDup.pdf")
	}
}

func TestFindPDFFirstAttachmentWins(t *testing.T) {
	lib := setupTestLibrary(t, []testPub{
		{
			canonical: "a study of things",
			base:      "smith",
			date:      "992020060100000000",
			pdfPaths:  []string{"Articles/first.pdf", "Articles/second.pdf"},
		},
	})

	titleHash, _ := citekey.TitleHash("a study of things")
	got, err := lib.FindPDF("smith:2020" + titleHash)
	if err != nil {
		t.Fatalf("FindPDF() error = %v", err)
	}
	if got != "Articles/first.pdf" {
		t.Errorf("FindPDF() = %q, want %q", got, "Articles/first.pdf")
	}
}

func TestFindPDFNoMatch(t *testing.T) {
	lib := setupTestLibrary(t, []testPub{
		{
			canonical: "a study of things",
			doi:       "10.1234/xyz",
			base:      "smith",
			date:      "992020060100000000",
			pdfPaths:  []string{"Articles/2020/Smith.pdf"},
		},
	})

	tests := []struct {
		name string
		key  string
	}{
		{"unknown base", "nobody:2020bb"},
		{"wrong year", "smith:1999bb"},
		{"wrong hash", "smith:2020zz"},
		{"empty hash", "smith:2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lib.FindPDF(tt.key)
			var noPDF NoPDFError
			if !errors.As(err, &noPDF) {
				t.Fatalf("FindPDF(%q) error = %v, want NoPDFError", tt.key, err)
			}
			if noPDF.Citekey != tt.key {
				t.Errorf("NoPDFError.Citekey = %q, want %q", noPDF.Citekey, tt.key)
			}
		})
	}
}

func TestFindPDFMalformedKey(t *testing.T) {
	lib := setupTestLibrary(t, nil)

	_, err := lib.FindPDF("not-a-citekey")
	var malformed citekey.MalformedKeyError
	if !errors.As(err, &malformed) {
		t.Fatalf("FindPDF() error = %v, want MalformedKeyError", err)
	}
}

func TestAttachmentPaths(t *testing.T) {
	lib := setupTestLibrary(t, []testPub{
		{
			canonical: "t",
			base:      "a",
			date:      "992020060100000000",
			pdfPaths:  []string{"one.pdf", "two.pdf"},
		},
		{
			canonical: "t",
			base:      "b",
			date:      "992020060100000000",
		},
	})

	paths, err := lib.AttachmentPaths(1)
	if err != nil {
		t.Fatalf("AttachmentPaths() error = %v", err)
	}
	if len(paths) != 2 || paths[0] != "one.pdf" || paths[1] != "two.pdf" {
		t.Errorf("AttachmentPaths(1) = %v", paths)
	}

	paths, err = lib.AttachmentPaths(2)
	if err != nil {
		t.Fatalf("AttachmentPaths() error = %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("AttachmentPaths(2) = %v, want none", paths)
	}
}

func TestPublicationsNullColumns(t *testing.T) {
	lib := setupTestLibrary(t, []testPub{{}})

	pubs, err := lib.Publications()
	if err != nil {
		t.Fatalf("Publications() error = %v", err)
	}
	if len(pubs) != 1 {
		t.Fatalf("Publications() returned %d rows, want 1", len(pubs))
	}
	pub := pubs[0]
	if pub.RowID == 0 {
		t.Error("RowID not populated")
	}
	if pub.DOI != "" || pub.CanonicalTitle != "" || pub.PublicationDate != "" {
		t.Errorf("NULL columns scanned as %+v, want empty strings", pub)
	}
}
