package analyzer

import "strings"

// languageSuffix maps one file-name suffix to a language label.
type languageSuffix struct {
	suffix string
	label  string
}

// languageSuffixes is checked in declaration order and the first match
// wins, so ambiguous suffixes are resolved by position in this table, not
// by specificity. Matching is case-sensitive.
var languageSuffixes = []languageSuffix{
	{".py", "Python"},
	{".js", "JavaScript"},
	{".ts", "TypeScript"},
	{".jsx", "React"},
	{".tsx", "React"},
	{".java", "Java"},
	{".go", "Go"},
	{".rs", "Rust"},
	{".cpp", "C++"},
	{".c", "C"},
	{".rb", "Ruby"},
	{".php", "PHP"},
	{".swift", "Swift"},
	{".kt", "Kotlin"},
	{".scala", "Scala"},
	{".sql", "SQL"},
	{".sh", "Shell"},
	{".yml", "YAML"},
	{".yaml", "YAML"},
	{".json", "JSON"},
	{".md", "Markdown"},
}

// DetectLanguage returns the language label for a file path, or false when
// no registered suffix matches.
func DetectLanguage(path string) (string, bool) {
	for _, entry := range languageSuffixes {
		if strings.HasSuffix(path, entry.suffix) {
			return entry.label, true
		}
	}
	return "", false
}
