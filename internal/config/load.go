package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a JSON tuning file and overwrites the matching package-level
// vars. Fields absent from the file are left at their current value, so a
// clop run can ship a file naming only the margins it searched over.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	apply(f)
	return nil
}

func apply(f file) {
	if f.EnableRazoring != nil {
		EnableRazoring = *f.EnableRazoring
	}
	if f.EnableNMP != nil {
		EnableNMP = *f.EnableNMP
	}
	if f.EnableFutilityPruning != nil {
		EnableFutilityPruning = *f.EnableFutilityPruning
	}
	if f.EnableRFP != nil {
		EnableRFP = *f.EnableRFP
	}
	if f.EnableThreatExt != nil {
		EnableThreatExt = *f.EnableThreatExt
	}
	if f.EnableHindsightDepth != nil {
		EnableHindsightDepth = *f.EnableHindsightDepth
	}
	if f.EnableMulticut != nil {
		EnableMulticut = *f.EnableMulticut
	}
	if f.EnableSEEPruning != nil {
		EnableSEEPruning = *f.EnableSEEPruning
	}
	if f.EnableLMP != nil {
		EnableLMP = *f.EnableLMP
	}
	if f.EnableHistoryPruning != nil {
		EnableHistoryPruning = *f.EnableHistoryPruning
	}
	if f.EnableProbcut != nil {
		EnableProbcut = *f.EnableProbcut
	}
	if f.EnableSingularExt != nil {
		EnableSingularExt = *f.EnableSingularExt
	}
	if f.ProbcutDepth != nil {
		ProbcutDepth = *f.ProbcutDepth
	}
	if f.MulticutDepth != nil {
		MulticutDepth = *f.MulticutDepth
	}
	if f.ThreatExtensionMinDepth != nil {
		ThreatExtensionMinDepth = *f.ThreatExtensionMinDepth
	}
}
