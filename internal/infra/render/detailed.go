package render

import (
	"fmt"
	"strings"
)

type libraryInfo struct {
	name        string
	description string
	functions   []string
	useCase     string
}

// libraries are display labels only; nothing here is executed.
var libraries = []libraryInfo{
	{"PyPDF2", "Pure Python PDF library for text extraction", []string{"PdfReader", "extract_text", "page processing"}, "PDF document parsing and text extraction"},
	{"PyMuPDF", "Python binding for MuPDF library", []string{"fitz.open", "get_text", "table extraction"}, "Advanced PDF processing with OCR capabilities"},
	{"python-docx", "Library for creating and updating MS Word documents", []string{"Document", "paragraphs", "runs", "tables"}, "MS Word document parsing and content extraction"},
	{"NLTK", "Natural Language Toolkit for text processing", []string{"tokenization", "lemmatization", "NER", "sentiment analysis"}, "Text analysis and natural language processing"},
	{"HuggingFace", "Transformers library for legal document analysis", []string{"AutoTokenizer", "AutoModel", "summarization", "classification"}, "AI-powered legal document understanding and summarization"},
	{"TensorFlow", "Machine learning framework for document analysis", []string{"text classification", "neural networks", "prediction models"}, "Deep learning analysis and legal document classification"},
}

const documentMetrics = `<div class="metrics-grid"><div class="row">` +
	`<div class="col-md-6"><div class="metric-item"><h6>Text Extraction Accuracy</h6><div class="progress mb-2"><div class="progress-bar" style="width: 94%">94%</div></div></div></div>` +
	`<div class="col-md-6"><div class="metric-item"><h6>Classification Confidence</h6><div class="progress mb-2"><div class="progress-bar" style="width: 87%">87%</div></div></div></div>` +
	`</div></div>`

// DetailedAnalysis renders the library processing details and document metrics.
func (Renderer) DetailedAnalysis() string {
	var b strings.Builder
	b.WriteString(`<div class="library-analysis">`)
	for _, l := range libraries {
		fmt.Fprintf(&b, `<div class="library-section mb-4"><h5>%s Processing</h5><p class="text-muted">%s</p>`, l.name, l.description)
		fmt.Fprintf(&b, `<div class="library-functions"><strong>Functions Used:</strong> <span class="ms-2">%s</span></div>`, strings.Join(l.functions, ", "))
		fmt.Fprintf(&b, `<div class="library-usecase mt-2"><strong>Use Case:</strong> <span class="ms-2">%s</span></div></div>`, l.useCase)
	}
	b.WriteString(`</div>`)
	return section("fa-search", "Library Processing Details", b.String()) +
		section("fa-chart-bar", "Document Metrics", documentMetrics)
}
