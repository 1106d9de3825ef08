package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"slices"

	"github.com/basedalex/doc-compare/pkg/config"
	"github.com/basedalex/doc-compare/pkg/similarity"
)

func main() {
	cfg, err := config.Load("./config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	res, err := http.Get(fmt.Sprintf("http://localhost:%s/health", cfg.SrvPort))
	if err != nil {
		log.Fatal(err)
	}
	res.Body.Close()
	log.Println("service is up:", res.Status)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	docs := map[string]string{
		"file1": "The cat sat on the mat.",
		"file2": "A cat sat on a mat.",
	}
	for field, content := range docs {
		part, err := mw.CreateFormFile(field, field+".txt")
		if err != nil {
			log.Fatal(err)
		}
		if _, err = part.Write([]byte(content)); err != nil {
			log.Fatal(err)
		}
	}
	if err = mw.Close(); err != nil {
		log.Fatal(err)
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("http://localhost:%s/compare", cfg.SrvPort), body)
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err = http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal(err)
	}
	defer res.Body.Close()

	log.Println("Response received")

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Response body:", string(respBody))

	var result similarity.Result
	if err = json.Unmarshal(respBody, &result); err != nil {
		log.Fatal("test", err)
	}

	if slices.Contains(result.CommonWords, "cat") && result.Similarity > 0 {
		log.Println("documents match!")
	} else {
		log.Println("documents don't match...")
	}
}
