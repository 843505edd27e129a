package config

// ClassificationRule maps a lowercase file extension (without the dot) to the
// Markdown language tag used on the fenced block wrapping that file.
// An empty Tag produces an untagged fence.
type ClassificationRule struct {
	Extension string `yaml:"extension"`
	Tag       string `yaml:"tag"`
}

// DefaultClassification is the built-in extension table.
var DefaultClassification = []ClassificationRule{
	{Extension: "xml", Tag: "xml"},
	{Extension: "vm", Tag: "velocity"},
	{Extension: "php", Tag: "php"},
	{Extension: "ini", Tag: "ini"},
	{Extension: "txt", Tag: ""},
}

// ClassificationRules returns the effective table: the built-in rules with configured
// rules layered on top. A configured rule replaces a built-in rule for the same
// extension in place; new extensions are appended in configuration order.
func (c *Config) ClassificationRules() []ClassificationRule {
	rules := make([]ClassificationRule, len(DefaultClassification), len(DefaultClassification)+len(c.Classification))
	copy(rules, DefaultClassification)
	index := make(map[string]int, len(rules))
	for i, r := range rules {
		index[r.Extension] = i
	}
	for _, r := range c.Classification {
		if i, ok := index[r.Extension]; ok {
			rules[i] = r
			continue
		}
		index[r.Extension] = len(rules)
		rules = append(rules, r)
	}
	return rules
}
