package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tokenKey is the reserved spec-file key holding the GitHub token. It is
// popped during parsing so it is never mistaken for a repository entry.
const tokenKey = "token"

// ErrMissingToken is returned when no token was found via any source.
var ErrMissingToken = errors.New("missing GitHub token: pass --token, add a 'token' key to the workflow spec, or set GITHUB_TOKEN")

// RepoWorkflows names one repository and the workflows to check in it.
type RepoWorkflows struct {
	Repo      string
	Workflows []string
}

// WorkflowSpec is the parsed workflow spec file: repositories with their
// workflow file names, in document order, plus the optional embedded token.
// It is read-only after parsing.
type WorkflowSpec struct {
	Repos []RepoWorkflows

	token string
}

// LoadSpec reads and parses a workflow spec file. The document must be a
// mapping from "owner/name" repository identifiers to lists of workflow
// file names; the reserved key "token" may hold a GitHub token.
func LoadSpec(path string) (*WorkflowSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workflow spec: %w", err)
	}
	defer f.Close()

	var root yaml.Node
	if err := yaml.NewDecoder(f).Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse workflow spec %s: %w", path, err)
	}
	return specFromNode(&root)
}

// specFromNode walks the document mapping node by node. A plain
// map[string][]string would lose the document order that fixes the check
// order, so the yaml.Node tree is read directly.
func specFromNode(root *yaml.Node) (*WorkflowSpec, error) {
	doc := root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, fmt.Errorf("workflow spec is empty")
		}
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("workflow spec must be a mapping of repository to workflow list")
	}

	spec := &WorkflowSpec{}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		if key.Value == tokenKey {
			if err := value.Decode(&spec.token); err != nil {
				return nil, fmt.Errorf("invalid token entry: %w", err)
			}
			continue
		}

		var workflows []string
		if err := value.Decode(&workflows); err != nil {
			return nil, fmt.Errorf("invalid workflow list for %s: %w", key.Value, err)
		}
		spec.Repos = append(spec.Repos, RepoWorkflows{Repo: key.Value, Workflows: workflows})
	}
	return spec, nil
}

// ResolveToken picks the GitHub token to use. The spec-file value is
// consulted first, a non-empty CLI token overrides it, and the GITHUB_TOKEN
// environment variable is the last resort. Returns ErrMissingToken when all
// three are absent.
func ResolveToken(cliToken string, spec *WorkflowSpec) (string, error) {
	token := spec.token
	if cliToken != "" {
		token = cliToken
	}
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// EnvWithDefault returns the value of an environment variable, or the
// default when unset or empty.
func EnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
