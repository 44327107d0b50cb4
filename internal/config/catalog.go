package config

import (
	"fmt"
	"os"

	"skilladvisor/internal/errors"
	"skilladvisor/internal/types"

	"gopkg.in/yaml.v3"
)

// DefaultCatalog returns the built-in role catalog. The advisor treats the
// catalog as an injected immutable value, so callers get a fresh copy each
// time.
func DefaultCatalog() types.Catalog {
	return types.Catalog{
		Roles: []types.RoleProfile{
			{Name: "Data Scientist", Skills: []string{"Python", "SQL", "Machine Learning", "Statistics", "Data Visualization"}},
			{Name: "Full Stack Developer", Skills: []string{"JavaScript", "React", "Node.js", "Databases", "APIs"}},
			{Name: "Cybersecurity Analyst", Skills: []string{"Networking", "Linux", "Threat Analysis", "SIEM", "Python"}},
			{Name: "Cloud Engineer", Skills: []string{"AWS", "Docker", "Kubernetes", "Terraform", "Linux"}},
			{Name: "Product Manager", Skills: []string{"Agile", "Communication", "Market Research", "Roadmapping", "SQL"}},
		},
	}
}

// LoadCatalogFile reads a role catalog from a YAML file of the shape:
//
//	roles:
//	  - name: Data Scientist
//	    skills: [Python, SQL]
func LoadCatalogFile(path string) (types.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Catalog{}, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read catalog file: %s", path), err)
	}
	return ParseCatalog(data)
}

// ParseCatalog unmarshals and validates catalog YAML.
func ParseCatalog(data []byte) (types.Catalog, error) {
	var catalog types.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return types.Catalog{}, errors.NewConfigError(errors.ErrCodeInvalidCatalog,
			"Cannot parse catalog YAML", err)
	}
	if err := ValidateCatalog(catalog); err != nil {
		return types.Catalog{}, err
	}
	return catalog, nil
}

// ValidateCatalog rejects catalogs that would make scoring ambiguous:
// empty catalogs, unnamed roles, and duplicate role names. Roles with no
// required skills are allowed; they score zero by definition.
func ValidateCatalog(catalog types.Catalog) error {
	if len(catalog.Roles) == 0 {
		return errors.NewConfigError(errors.ErrCodeInvalidCatalog,
			"Catalog must define at least one role", nil)
	}

	seen := make(map[string]bool, len(catalog.Roles))
	for _, role := range catalog.Roles {
		if role.Name == "" {
			return errors.NewConfigError(errors.ErrCodeInvalidCatalog,
				"Catalog role is missing a name", nil)
		}
		if seen[role.Name] {
			return errors.NewConfigError(errors.ErrCodeInvalidCatalog,
				fmt.Sprintf("Duplicate role in catalog: %s", role.Name), nil)
		}
		seen[role.Name] = true
	}
	return nil
}

// ResolveCatalog returns the catalog the advisor should use: the configured
// catalog file when set, otherwise the built-in default.
func (c *Config) ResolveCatalog() (types.Catalog, error) {
	if c.Advisor.CatalogFile == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalogFile(c.Advisor.CatalogFile)
}
