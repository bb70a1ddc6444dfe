package documents

import "testing"

func TestIsAllowed(t *testing.T) {
	cases := []struct {
		name string
		in   Upload
		want bool
	}{
		{"pdf mime", Upload{Name: "contract", MIMEType: "application/pdf"}, true},
		{"word mime", Upload{Name: "x", MIMEType: "application/msword"}, true},
		{"docx ext without mime", Upload{Name: "Brief.DOCX"}, true},
		{"jpeg ext", Upload{Name: "scan.jpeg", MIMEType: "application/octet-stream"}, true},
		{"text file", Upload{Name: "notes.txt", MIMEType: "text/plain"}, false},
		{"extension only in the middle", Upload{Name: "file.pdf.exe"}, false},
		{"no name no mime", Upload{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAllowed(tc.in); got != tc.want {
				t.Errorf("IsAllowed(%+v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDetectType(t *testing.T) {
	cases := map[string]FileType{
		"a.pdf":        TypePDF,
		"a.doc":        TypeDOCX,
		"A.DOCX":       TypeDOCX,
		"a.png":        TypeImage,
		"a.jpg":        TypeImage,
		"a.jpeg":       TypeImage,
		"a.txt":        TypeUnknown,
		"no-extension": TypeUnknown,
	}
	for name, want := range cases {
		if got := DetectType(name); got != want {
			t.Errorf("DetectType(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestFormatFileSize(t *testing.T) {
	cases := map[int64]string{
		0:                      "0 Bytes",
		512:                    "512 Bytes",
		1024:                   "1 KB",
		1536:                   "1.5 KB",
		2 * 1024 * 1024:        "2 MB",
		2516582:                "2.4 MB",
		3 * 1024 * 1024 * 1024: "3 GB",
	}
	for in, want := range cases {
		if got := FormatFileSize(in); got != want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestLookupSample(t *testing.T) {
	contract, ok := LookupSample("contract")
	if !ok {
		t.Fatal("contract sample missing")
	}
	if len(contract.Clauses) != 10 {
		t.Errorf("contract clauses = %d, want 10", len(contract.Clauses))
	}

	brief, ok := LookupSample("brief")
	if !ok {
		t.Fatal("brief sample missing")
	}
	f := UploadedFile{IsSample: true, Sample: &brief}
	if _, fixed := f.FixedClauses(); fixed {
		t.Error("brief has sections only and must not report a fixed clause list")
	}

	contract.Clauses[0] = "mutated"
	again, _ := LookupSample("contract")
	if again.Clauses[0] == "mutated" {
		t.Error("LookupSample must return a copy")
	}

	if _, ok := LookupSample("nope"); ok {
		t.Error("unknown sample must not be found")
	}
	if got := len(Samples()); got != 2 {
		t.Errorf("Samples() = %d entries, want 2", got)
	}
}
