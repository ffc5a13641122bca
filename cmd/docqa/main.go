package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	ansopenai "docqa/internal/answerer/openai"
	"docqa/internal/chunker"
	"docqa/internal/config"
	"docqa/internal/domain"
	embopenai "docqa/internal/embedding/openai"
	"docqa/internal/embedding/tfidf"
	"docqa/internal/extractor"
	"docqa/internal/index"
	"docqa/internal/service"
	"docqa/internal/summarizer"
	"docqa/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var question string
	var summarize bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/docqa/config.yaml if not provided)")
	flag.StringVar(&question, "q", "", "Answer a single question and exit")
	flag.BoolVar(&summarize, "summarize", false, "Print a summary of each input document and exit")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: docqa [--config=config.yaml] [-q \"question\"] [-summarize] file1.pdf [file2.docx ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Assemble components
	var emb domain.Embedder
	switch cfg.Embedder.Type {
	case "openai", "":
		if cfg.Embedder.OpenAI == nil {
			log.Fatalf("openai embedder config missing")
		}
		client, err := embopenai.NewClient(embopenai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
			Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
		})
		if err != nil {
			log.Fatalf("openai embedder init failed: %v", err)
		}
		emb = client
	case "tfidf":
		emb = tfidf.NewEmbedder()
	default:
		log.Fatalf("unknown embedder: %s", cfg.Embedder.Type)
	}

	ans, err := ansopenai.NewClient(ansopenai.Config{
		BaseURL:     cfg.Answerer.BaseURL,
		APIKeyEnv:   cfg.Answerer.APIKeyEnv,
		Model:       cfg.Answerer.Model,
		Temperature: cfg.Answerer.Temperature,
		MaxTokens:   cfg.Answerer.MaxTokens,
		Timeout:     time.Duration(cfg.Answerer.TimeoutSecs) * time.Second,
	})
	if err != nil {
		log.Fatalf("answerer init failed: %v", err)
	}

	sum := summarizer.NewLLMSummarizer(ans, cfg.Summarizer.ChunkChars, cfg.Summarizer.OverlapChars, cfg.Summarizer.WordLimit)
	svc := service.NewQAService(
		extractor.New(),
		chunker.NewWordChunker(cfg.Chunker.ChunkSizeWords),
		index.NewFlat(emb),
		ans,
		sum,
		cfg.Retriever.TopK,
	)

	ctx := context.Background()

	if summarize {
		for _, p := range inputs {
			out, err := svc.SummarizeDocument(ctx, p)
			if err != nil {
				log.Fatalf("summarize %s failed: %v", p, err)
			}
			fmt.Printf("--- %s ---\n%s\n", filepath.Base(p), out)
		}
		return
	}

	n, err := svc.LoadDocuments(ctx, inputs)
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}
	log.Printf("indexed %d chunk(s) from %d file(s)", n, len(inputs))

	if question != "" {
		res, err := svc.Answer(ctx, question)
		if err != nil {
			log.Fatalf("answer failed: %v", err)
		}
		if res.Answer == "" {
			fmt.Println("No answer found in the supplied documents.")
		} else {
			fmt.Println(res.Answer)
		}
		fmt.Printf("\nTop %d relevant chunk(s):\n", len(res.Sources))
		for _, r := range res.Sources {
			fmt.Printf("\n--- %s (score=%.3f) ---\n%s\n", r.Chunk.SourceFile, r.Score, r.Chunk.Text)
		}
		return
	}

	m := tui.New(svc, fmt.Sprintf("%d chunk(s) indexed from %d file(s)", n, len(inputs)))
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
