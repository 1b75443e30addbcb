// Package config loads typed configuration from raw documents.
//
// Four extension points make up a load:
//   - DataFetcher: retrieves raw bytes (see config/fetcher/file)
//   - Parser: decodes bytes into a target, optionally below a path
//     (see config/parser/yaml and config/parser/json)
//   - Defaulter: fills unset fields after parsing
//   - Validator: rejects invalid values after defaults are applied
//
// # Paths
//
// Paths select a section of the document and use colon (:) as the separator:
//
//	"training:params"  -> doc["training"]["params"]
//	""                 -> entire document
//
// # Example
//
//	type Layout struct {
//	    Project string   `yaml:"project"`
//	    Files   []string `yaml:"files"`
//	}
//
//	fetcher, err := filefetcher.NewFetcher(afero.NewOsFs(), "layout.yaml")()
//	layout, err := config.Load(yamlparser.NewParser(), fetcher, &Layout{}, "")
package config
