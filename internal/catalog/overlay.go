package catalog

import (
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Overlay is extra patterns layered on top of the built-in tables, keyed by
// dimension then label. Labels not already in the catalog are appended at the
// end of the dimension's declaration order, so overlay labels only win ties
// against each other.
type Overlay map[Dimension]map[string][]string

// ApplyOverlayFile reads a YAML overlay and extends the catalog with it.
// A malformed pattern in the overlay is a configuration error, same as a
// malformed built-in pattern.
func (c *Catalog) ApplyOverlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "catalog: read overlay %s", path)
	}

	var overlay Overlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return eris.Wrapf(err, "catalog: parse overlay %s", path)
	}

	added := 0
	for dim, labels := range overlay {
		for label, patterns := range labels {
			if err := c.Extend(dim, label, patterns); err != nil {
				return err
			}
			added += len(patterns)
		}
	}

	zap.L().Info("catalog: applied overlay",
		zap.String("path", path),
		zap.Int("patterns", added),
	)
	return nil
}
