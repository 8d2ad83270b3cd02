// Package config holds the tunable search constants: the clop-tuned
// pruning margins and depth thresholds that would otherwise be buried
// numeric literals in the search core. Values are package-level vars
// rather than a struct so existing call sites reference them directly
// (config.EnableNMP, config.ProbcutDepth, ...); Load overwrites them in
// place from a file for batch-tuning runs, and UCI setoption handlers
// may do the same for a running engine.
package config

// Selective-search heuristic toggles. All default on; a tuning run or a
// debugging session can flip individual ones off without touching the
// search code itself.
var (
	EnableRazoring       = true
	EnableNMP            = true
	EnableFutilityPruning = true
	EnableRFP            = true
	EnableThreatExt      = true
	EnableHindsightDepth = true
	EnableMulticut       = true
	EnableSEEPruning     = true
	EnableLMP            = true
	EnableHistoryPruning = true
	EnableProbcut        = true
	EnableSingularExt    = true
)

// Depth thresholds gating the pruning/extension techniques above.
var (
	ProbcutDepth            = 5
	MulticutDepth           = 8
	ThreatExtensionMinDepth = 5
)

// file mirrors the exported vars above for JSON (de)serialization. Fields
// are pointers so a partial tuning file only overrides what it names.
type file struct {
	EnableRazoring        *bool `json:"enable_razoring"`
	EnableNMP             *bool `json:"enable_nmp"`
	EnableFutilityPruning *bool `json:"enable_futility_pruning"`
	EnableRFP             *bool `json:"enable_rfp"`
	EnableThreatExt       *bool `json:"enable_threat_ext"`
	EnableHindsightDepth  *bool `json:"enable_hindsight_depth"`
	EnableMulticut        *bool `json:"enable_multicut"`
	EnableSEEPruning      *bool `json:"enable_see_pruning"`
	EnableLMP             *bool `json:"enable_lmp"`
	EnableHistoryPruning  *bool `json:"enable_history_pruning"`
	EnableProbcut         *bool `json:"enable_probcut"`
	EnableSingularExt     *bool `json:"enable_singular_ext"`

	ProbcutDepth            *int `json:"probcut_depth"`
	MulticutDepth           *int `json:"multicut_depth"`
	ThreatExtensionMinDepth *int `json:"threat_extension_min_depth"`
}
