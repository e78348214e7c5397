package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/jucer2cmake/internal/exporters"
)

var exporterBlockSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "exporter", LabelNames: []string{"id"}}},
}

// checkExporterBlocks reports exporter blocks that name an unsupported
// export target or repeat one configured earlier in the file.
func checkExporterBlocks(body hcl.Body) hcl.Diagnostics {
	content, _, diags := body.PartialContent(exporterBlockSchema)
	if diags.HasErrors() {
		return diags
	}

	seen := make(map[string]bool)
	for _, block := range content.Blocks {
		id := block.Labels[0]
		if _, ok := exporters.Lookup(id); !ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown exporter",
				Detail:   fmt.Sprintf("%q is not a supported export target.", id),
				Subject:  &block.LabelRanges[0],
			})
			continue
		}
		if seen[id] {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate exporter \"" + id + "\" block",
				Detail:   "Only one \"exporter\" block is allowed per export target.",
				Subject:  &block.DefRange,
			})
		}
		seen[id] = true
	}
	return diags
}
