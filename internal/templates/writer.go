package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/workspace"
)

// WorkflowPath is where the GitHub Pages workflow is written, relative to the project root.
var WorkflowPath = filepath.Join(".github", "workflows", "static.yml")

// ErrWorkflowExists is returned when a workflow file is present and force is not set.
var ErrWorkflowExists = errors.New("workflow file already exists")

// WriteWorkflow writes the GitHub Pages deployment workflow under root, creating
// .github/workflows as needed. An existing file is only replaced when force is set.
//
// Returns the full path of the written file.
func WriteWorkflow(root string, force bool) (string, error) {
	if root == "" {
		return "", ferrors.ValidationError("project root is required").Build()
	}
	fullPath := filepath.Join(root, WorkflowPath)
	if _, err := os.Stat(fullPath); err == nil && !force {
		return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrWorkflowExists, fullPath)
	}

	data, err := Asset(AssetWorkflow)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryTemplate, "missing workflow asset").Fatal().Build()
	}
	if err := workspace.EnsureDir(filepath.Dir(fullPath)); err != nil {
		return "", err
	}
	if err := workspace.WriteFile(fullPath, data); err != nil {
		return "", err
	}
	return fullPath, nil
}
