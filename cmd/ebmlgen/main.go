// Command ebmlgen is the code generator CLI: it loads one or more EBML
// schema XML documents, builds each into a schema.Graph, and writes the
// generated package codegen.Generate produces. Pointed at a directory, it
// processes every schema file concurrently with golang.org/x/sync/errgroup,
// the same concurrency primitive the rest of the example corpus reaches for
// over raw goroutines+sync.WaitGroup.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ebml-io/ebml/codegen"
	"github.com/ebml-io/ebml/schema"
	"github.com/ebml-io/ebml/schemaxml"
)

func main() {
	schemaPath := flag.String("schema", "", "path to an EBMLSchema XML file, or a directory of them")
	outDir := flag.String("out", "", "output directory for the generated package(s)")
	pkgName := flag.String("pkg", "", "generated package name (defaults to the schema's docType)")
	flag.Parse()

	if *schemaPath == "" || *outDir == "" {
		log.Fatal("ebmlgen: -schema and -out are required")
	}

	jobs, err := collectJobs(*schemaPath, *outDir, *pkgName)
	if err != nil {
		log.Fatalf("ebmlgen: %v", err)
	}

	var g errgroup.Group
	for _, j := range jobs {
		j := j
		g.Go(func() error { return j.run() })
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("ebmlgen: %v", err)
	}
}

// job is one schema file's worth of generation work: load, build, render,
// write. Each runs independently so errgroup can fan them out.
type job struct {
	schemaFile string
	outDir     string
	pkgName    string
}

// collectJobs resolves schemaPath into one job per schema file. A directory
// is walked non-recursively for *.xml files, each given its own
// subdirectory of outDir named after the file; a single file uses outDir
// directly.
func collectJobs(schemaPath, outDir, pkgName string) ([]job, error) {
	info, err := os.Stat(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", schemaPath, err)
	}

	if !info.IsDir() {
		return []job{{schemaFile: schemaPath, outDir: outDir, pkgName: pkgName}}, nil
	}

	entries, err := os.ReadDir(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", schemaPath, err)
	}

	var jobs []job
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		jobs = append(jobs, job{
			schemaFile: filepath.Join(schemaPath, entry.Name()),
			outDir:     filepath.Join(outDir, name),
			pkgName:    pkgName,
		})
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no .xml schema files found under %s", schemaPath)
	}
	return jobs, nil
}

func (j job) run() error {
	f, err := os.Open(j.schemaFile)
	if err != nil {
		return fmt.Errorf("opening %s: %w", j.schemaFile, err)
	}
	defer f.Close()

	docType, elements, err := schemaxml.LoadWithDocType(f)
	if err != nil {
		return fmt.Errorf("loading %s: %w", j.schemaFile, err)
	}

	graph, err := schema.BuildGraph(elements)
	if err != nil {
		return fmt.Errorf("building graph for %s: %w", j.schemaFile, err)
	}

	pkg := j.pkgName
	if pkg == "" {
		pkg = sanitizePackageName(docType)
	}

	files, err := codegen.Generate(graph, codegen.PackageConfig{Name: pkg, SourceDocType: docType})
	if err != nil {
		return fmt.Errorf("generating from %s: %w", j.schemaFile, err)
	}

	if err := codegen.WritePackage(j.outDir, files); err != nil {
		return fmt.Errorf("writing package for %s: %w", j.schemaFile, err)
	}

	log.Printf("ebmlgen: wrote package %q (docType %q) to %s", pkg, docType, j.outDir)
	return nil
}

// sanitizePackageName turns a docType like "files-in-ebml-demo" into a
// legal Go package identifier.
func sanitizePackageName(docType string) string {
	var b strings.Builder
	for _, r := range docType {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	if b.Len() == 0 {
		return "ebmlschema"
	}
	return b.String()
}
