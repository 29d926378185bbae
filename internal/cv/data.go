// Package cv exports the résumé as a PDF, either laid out on the fly or
// fetched pre-built.
package cv

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed cv.yaml
var defaultYAML []byte

type PersonalInfo struct {
	Name    string `yaml:"name"`
	Website string `yaml:"website"`
	Email   string `yaml:"email"`
	Mobile  string `yaml:"mobile"`
}

type Education struct {
	Institution string `yaml:"institution"`
	Degree      string `yaml:"degree"`
	GPA         string `yaml:"gpa"`
	Duration    string `yaml:"duration"`
}

type Project struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	GithubURL   string `yaml:"github_url"`
}

type Skills struct {
	Languages    []string `yaml:"languages"`
	Technologies []string `yaml:"technologies"`
}

// Data is the fixed résumé record.
type Data struct {
	PersonalInfo      PersonalInfo `yaml:"personal_info"`
	Education         Education    `yaml:"education"`
	Projects          []Project    `yaml:"projects"`
	Knowledge         []string     `yaml:"knowledge"`
	ProgrammingSkills Skills       `yaml:"programming_skills"`
}

// Default returns the built-in résumé.
func Default() (Data, error) {
	return Parse(defaultYAML)
}

// Load reads a résumé from a YAML file.
func Load(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read cv data: %w", err)
	}
	return Parse(b)
}

// Parse decodes a YAML résumé.
func Parse(b []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Data{}, fmt.Errorf("parse cv data: %w", err)
	}
	if d.PersonalInfo.Name == "" {
		return Data{}, fmt.Errorf("parse cv data: personal_info.name is required")
	}
	return d, nil
}

// FileName is the download name, e.g. "Le_Tien_Thuc_CV.pdf".
func FileName(d Data) string {
	return strings.ReplaceAll(strings.TrimSpace(d.PersonalInfo.Name), " ", "_") + "_CV.pdf"
}
