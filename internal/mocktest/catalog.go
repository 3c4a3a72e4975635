package mocktest

import (
	"fmt"
	"strings"
)

var patternTests = []Test{
	{Name: "Array", Type: Pattern, Description: "Two pointers, sliding window, prefix sum"},
	{Name: "String", Type: Pattern, Description: "Pattern matching, manipulation, parsing"},
	{Name: "Graph", Type: Pattern, Description: "BFS, DFS, shortest path, topological sort"},
	{Name: "DP", Type: Pattern, Description: "Memoization, tabulation, state transition"},
}

var companyDescriptions = map[string]string{
	"Amazon": "OA simulation with mixed difficulty",
	"Google": "Algorithm-heavy with optimization focus",
	"Meta":   "Data structures and system design",
	"Apple":  "Clean code and edge case handling",
}

// Catalog lists the available tests: pattern tests first, then one
// company test per name in companies.
type Catalog struct {
	tests []Test
}

// NewCatalog builds the catalog for the given company names.
func NewCatalog(companies []string) *Catalog {
	tests := append([]Test(nil), patternTests...)
	for _, c := range companies {
		desc, ok := companyDescriptions[c]
		if !ok {
			desc = fmt.Sprintf("%s interview loop simulation", c)
		}
		tests = append(tests, Test{Name: c, Type: Company, Description: desc})
	}
	return &Catalog{tests: tests}
}

// Tests returns every test in catalog order.
func (c *Catalog) Tests() []Test {
	return append([]Test(nil), c.tests...)
}

// ByType returns the tests of type t.
func (c *Catalog) ByType(t Type) []Test {
	var out []Test
	for _, test := range c.tests {
		if test.Type == t {
			out = append(out, test)
		}
	}
	return out
}

// Find looks a test up by name, case-insensitively.
func (c *Catalog) Find(name string) (Test, error) {
	for _, test := range c.tests {
		if strings.EqualFold(test.Name, strings.TrimSpace(name)) {
			return test, nil
		}
	}
	return Test{}, fmt.Errorf("%w: %q", ErrUnknownTest, name)
}
