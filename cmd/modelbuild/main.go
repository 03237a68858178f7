package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/namantam1/semantic-steganographic-encoder/model"
)

// modelbuild turns a plain-text corpus into a model artifact:
//
//	modelbuild -in corpus.txt -out model.json
//	modelbuild -url https://example.com/corpus.txt -order 3 -out trigram.json
//
// Downloads are cached under .cache so repeated builds stay offline.
func main() {
	_ = godotenv.Load()

	var (
		inPath   = flag.String("in", "", "Path to corpus text file")
		url      = flag.String("url", os.Getenv("STEG_CORPUS_URL"), "Corpus URL to download (cached in -cache)")
		cacheDir = flag.String("cache", ".cache", "Download cache directory")
		outPath  = flag.String("out", "model.json", "Output artifact path")
		order    = flag.Int("order", 2, "Model order: 2 (bigram) or 3 (trigram)")
		topK     = flag.Int("topk", model.DefaultTopK, "Successors kept per letter bucket")
		minCount = flag.Int("mincount", model.DefaultMinCount, "Minimum n-gram count kept")
	)
	flag.Parse()

	if *inPath == "" && *url == "" {
		fmt.Fprintln(os.Stderr, "error: -in or -url required")
		flag.Usage()
		os.Exit(1)
	}

	text, err := loadCorpus(*inPath, *url, *cacheDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}

	tokens := model.Tokenize(text)
	fmt.Printf("Processing %d tokens...\n", len(tokens))

	builder := model.NewBuilder(model.Order(*order))
	builder.TopK = *topK
	builder.MinCount = *minCount
	builder.Add(tokens)

	m, err := builder.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building model: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Vocabulary size: %d (%s)\n", m.VocabSize(), m.Kind())

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	if err := m.Save(f); err != nil {
		_ = f.Close()
		fmt.Fprintf(os.Stderr, "error writing artifact: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error closing %s: %v\n", *outPath, err)
		os.Exit(1)
	}

	if info, err := os.Stat(*outPath); err == nil {
		fmt.Printf("Saved %s (%.2f KB)\n", *outPath, float64(info.Size())/1024)
	}
}

func loadCorpus(inPath, url, cacheDir string) (string, error) {
	if inPath != "" {
		data, err := os.ReadFile(inPath)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	cachePath := filepath.Join(cacheDir, filepath.Base(url))
	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	fmt.Printf("Downloading %s...\n", url)
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		return "", err
	}

	return string(data), nil
}
