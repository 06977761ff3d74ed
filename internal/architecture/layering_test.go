package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePrefix = "studydash/internal/modules/"

// TestHexagonalLayerImports walks every module source file and checks that
// imports flow inward: adapters see only ports and dtos, services never
// reach back into adapters or usecases, and the domain imports no other
// layer at all. Cross-module imports are limited to port/in and dto.
func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	fset := token.NewFileSet()
	root := filepath.Join("..", "modules")
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		slash := filepath.ToSlash(path)
		module, layer := classify(slash)
		if module == "" || layer == "" {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if !strings.Contains(importPath, modulePrefix) {
				continue
			}
			if reason := layerViolation(module, layer, importPath); reason != "" {
				t.Fatalf("forbidden import in %s (%s): %s (%s)", slash, layer, importPath, reason)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
}

func classify(path string) (module, layer string) {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" {
			module = parts[i+1]
			break
		}
	}
	for _, candidate := range []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"} {
		if strings.Contains(path, "/"+candidate+"/") {
			layer = candidate
			break
		}
	}
	return module, layer
}

func importLayer(importPath string) string {
	for _, candidate := range []string{"adapter", "usecase", "service", "domain", "port/in", "port/out", "dto"} {
		if strings.Contains(importPath, "/"+candidate+"/") || strings.HasSuffix(importPath, "/"+candidate) {
			return candidate
		}
	}
	return ""
}

func layerViolation(module, layer, importPath string) string {
	imported := importLayer(importPath)
	if !strings.Contains(importPath, modulePrefix+module+"/") {
		// Only a module's public face is visible from the outside.
		if imported != "port/in" && imported != "dto" {
			return "cross-module import outside port/in and dto"
		}
		return ""
	}

	switch layer {
	case "adapter/in":
		if imported != "port/in" && imported != "dto" {
			return "inbound adapters talk to the module through port/in"
		}
	case "usecase":
		if imported == "adapter" {
			return "usecases must not depend on adapters"
		}
	case "service":
		if imported == "adapter" || imported == "usecase" {
			return "services sit below usecases and adapters"
		}
	case "domain":
		if imported != "" && imported != "domain" {
			return "the domain imports no other layer"
		}
	}
	return ""
}
