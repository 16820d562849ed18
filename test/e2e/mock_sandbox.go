package e2e

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"sync"

	"github.com/forgeworks/forge/pkg/archive"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/sandbox"
	"github.com/forgeworks/forge/pkg/spec"
)

// VerifyCall records one verifier invocation, with the archive contents
// at that point so repair tests can assert what each attempt deployed.
type VerifyCall struct {
	Spec  *spec.Spec
	Files map[string]string
}

// ScriptedVerifier implements sandbox.ArchiveVerifier with canned
// reports, replacing the docker layer while the repair loop, the fix
// agent, and the reviewer stay real. An exhausted script answers with a
// skipped report, the same shape a docker-less host produces.
type ScriptedVerifier struct {
	mu      sync.Mutex
	reports []*sandbox.Report
	calls   []VerifyCall
}

// NewScriptedVerifier creates an empty scripted verifier.
func NewScriptedVerifier() *ScriptedVerifier {
	return &ScriptedVerifier{}
}

// AddReport appends the report returned by the next Verify call.
func (v *ScriptedVerifier) AddReport(r *sandbox.Report) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.reports = append(v.reports, r)
}

// Verify implements sandbox.ArchiveVerifier.
func (v *ScriptedVerifier) Verify(_ context.Context, sp *spec.Spec, zipPath string) (*sandbox.Report, error) {
	files, err := archive.Files(zipPath)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.calls = append(v.calls, VerifyCall{Spec: sp, Files: files})

	if len(v.reports) == 0 {
		return &sandbox.Report{Skipped: true, SkipReason: "verifier script exhausted"}, nil
	}
	r := v.reports[0]
	v.reports = v.reports[1:]
	return r, nil
}

// Calls returns a snapshot of every recorded invocation.
func (v *ScriptedVerifier) Calls() []VerifyCall {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]VerifyCall, len(v.calls))
	copy(out, v.calls)
	return out
}

// PassingReport builds a healthy report with one green probe per CRUD
// step of a single entity, enough for Report.Passed() to hold.
func PassingReport() *sandbox.Report {
	ok := 200
	return &sandbox.Report{
		Deployed: true,
		Healthy:  true,
		Endpoints: []models.EndpointResult{
			{TestName: "CREATE", Endpoint: "/tasks/", Method: "POST", Passed: true, StatusCode: &ok},
			{TestName: "LIST", Endpoint: "/tasks/", Method: "GET", Passed: true, StatusCode: &ok},
			{TestName: "READ", Endpoint: "/tasks/{id}", Method: "GET", Passed: true, StatusCode: &ok},
		},
		TestsPassed: 3,
		TestsTotal:  3,
		ElapsedMS:   1200,
	}
}

// WordBagEmbedder implements rag.Embedder deterministically: each word
// bumps one of the 768 dimensions, and the vector is L2-normalized.
// Texts sharing words land close in cosine space, which is all the
// retrieval floor needs.
type WordBagEmbedder struct{}

// NewWordBagEmbedder creates the deterministic test embedder.
func NewWordBagEmbedder() *WordBagEmbedder {
	return &WordBagEmbedder{}
}

// EmbedDocuments implements rag.Embedder.
func (e *WordBagEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = embedText(t)
	}
	return out, nil
}

// EmbedQuery implements rag.Embedder.
func (e *WordBagEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	return embedText(text), nil
}

func embedText(text string) []float32 {
	vec := make([]float32, config.EmbeddingDimensions)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,;:!?\"'()")
		if word == "" {
			continue
		}
		h := fnv.New32a()
		h.Write([]byte(word))
		vec[h.Sum32()%config.EmbeddingDimensions]++
	}
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		vec[0] = 1
		return vec
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec
}
