package web

import (
	"context"
	"sync"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driving"
)

// PageTitle is the heading of the dashboard page.
const PageTitle = "RFP BidAssist AI - Dashboard"

// Notice texts shown after an upload form submit.
const (
	NoFileText    = "Select a PDF file first."
	SuccessText   = "RFP uploaded & processed."
	FailurePrefix = "Upload failed: "
)

// Notice is a message shown above the panels.
type Notice struct {
	Kind string // info, success or error
	Text string
}

// JSONPanel is one rendered read-only panel.
type JSONPanel struct {
	Title string
	Body  string
	Empty bool
	Err   string
}

// SpecMatchPanel is the rendered spec-match table.
type SpecMatchPanel struct {
	Rows []domain.SpecMatchRow
	Err  string
}

// Page is the template model for one dashboard render.
type Page struct {
	Title     string
	Origin    string
	RequestID string
	Notice    *Notice

	Summary   JSONPanel
	Scope     JSONPanel
	SpecMatch SpecMatchPanel
	OEM       JSONPanel

	Loaded int
	Failed int
}

// loadPage fetches the four panels concurrently. Each goroutine writes
// only its own panel, so failures stay independent.
func loadPage(ctx context.Context, svc driving.DashboardService) *Page {
	page := &Page{
		Title:   PageTitle,
		Origin:  svc.Origin(),
		Summary: JSONPanel{Title: "Technical Summary"},
		Scope:   JSONPanel{Title: "Scope of Supply"},
		OEM:     JSONPanel{Title: "OEM Recommendations"},
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		v, err := svc.TechnicalSummary(ctx)
		fillJSON(&page.Summary, v, len(v) == 0, err)
	}()
	go func() {
		defer wg.Done()
		v, err := svc.ScopeOfSupply(ctx)
		fillJSON(&page.Scope, v, len(v) == 0, err)
	}()
	go func() {
		defer wg.Done()
		rows, err := svc.SpecMatch(ctx)
		if err != nil {
			page.SpecMatch.Err = err.Error()
			return
		}
		page.SpecMatch.Rows = rows
	}()
	go func() {
		defer wg.Done()
		recs, err := svc.OEMRecommendations(ctx)
		if err != nil {
			fillJSON(&page.OEM, nil, true, err)
			return
		}
		fillJSON(&page.OEM, recs.Data(), isEmptyValue(recs.Data()), nil)
	}()

	wg.Wait()

	for _, failed := range []bool{
		page.Summary.Err != "",
		page.Scope.Err != "",
		page.SpecMatch.Err != "",
		page.OEM.Err != "",
	} {
		if failed {
			page.Failed++
		} else {
			page.Loaded++
		}
	}
	return page
}

func fillJSON(p *JSONPanel, v any, empty bool, err error) {
	if err != nil {
		p.Err = err.Error()
		return
	}
	p.Empty = empty
	p.Body = domain.IndentJSON(v)
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	}
	return false
}
