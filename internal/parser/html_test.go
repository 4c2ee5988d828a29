package parser

import (
	"strings"
	"testing"
)

func TestHTMLParserExtractsTextAndMeta(t *testing.T) {
	input := `<html>
<head>
  <title>Annual Report</title>
  <meta name="author" content="Jane Doe">
</head>
<body>
  <h1>Overview</h1>
  <p>First paragraph.</p>
  <script>ignored();</script>
  <p>Second paragraph.</p>
</body>
</html>`
	p := &HTMLParser{}
	res, err := p.Parse(strings.NewReader(input), "report.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Metadata["dc:title"] != "Annual Report" {
		t.Errorf("expected dc:title=%q, got %v", "Annual Report", res.Metadata["dc:title"])
	}
	if res.Metadata["meta:author"] != "Jane Doe" {
		t.Errorf("expected meta:author=%q, got %v", "Jane Doe", res.Metadata["meta:author"])
	}

	for _, want := range []string{"Overview", "First paragraph.", "Second paragraph."} {
		if !strings.Contains(res.Text, want) {
			t.Errorf("expected text to contain %q, got %q", want, res.Text)
		}
	}
	if strings.Contains(res.Text, "ignored") {
		t.Errorf("expected script content to be skipped, got %q", res.Text)
	}
}

func TestHTMLParserNoHead(t *testing.T) {
	input := `<p>Bare fragment.</p>`
	p := &HTMLParser{}
	res, err := p.Parse(strings.NewReader(input), "frag.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res.Metadata["dc:title"]; ok {
		t.Error("expected no dc:title")
	}
	if !strings.Contains(res.Text, "Bare fragment.") {
		t.Errorf("expected fragment text, got %q", res.Text)
	}
}
