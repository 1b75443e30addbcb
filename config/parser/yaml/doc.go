// Package yaml implements config.Parser for YAML documents using github.com/goccy/go-yaml.
//
// Colon-separated paths are converted to goccy/go-yaml path syntax
// ("training:params" becomes "$.training.params") and resolved with
// PathString before decoding, so only the selected section is decoded.
//
//	parser := yaml.NewParser(yaml.WithStrict())
//	var params Params
//	err := parser.Parse(data, &params, "training:params")
package yaml
