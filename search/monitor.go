package search

import "github.com/mercil/assetrank/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	IntentParsed(intent *core.Intent)
	AfterSemanticSearch(matches []*core.RetrievalMatch)
	Geocoded(place string, position core.LatLng, found bool)
	Scored(result *Result)
	Disqualified(asset *core.Asset, reason string)
	Finish(response *Response)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                 {}
func (n *noopMonitor) IntentParsed(_ *core.Intent)                    {}
func (n *noopMonitor) AfterSemanticSearch(_ []*core.RetrievalMatch)   {}
func (n *noopMonitor) Geocoded(_ string, _ core.LatLng, _ bool)       {}
func (n *noopMonitor) Scored(_ *Result)                               {}
func (n *noopMonitor) Disqualified(_ *core.Asset, _ string)           {}
func (n *noopMonitor) Finish(_ *Response)                             {}
