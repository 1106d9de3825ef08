package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/basedalex/doc-compare/pkg/similarity"
	"github.com/basedalex/doc-compare/pkg/words"
)

func main() {
	var str, file1, file2 string

	flag.StringVar(&str, "s", "", "input a string to be preprocessed")
	flag.StringVar(&file1, "f1", "", "first document to compare")
	flag.StringVar(&file2, "f2", "", "second document to compare")
	flag.Parse()

	if str != "" {
		text, _ := words.Preprocess(str)
		fmt.Println(text)
		return
	}

	if file1 == "" || file2 == "" {
		log.Fatalln("please provide -s or both -f1 and -f2")
	}

	doc1, err := os.ReadFile(file1)
	if err != nil {
		log.Fatal(err)
	}

	doc2, err := os.ReadFile(file2)
	if err != nil {
		log.Fatal(err)
	}

	result, err := similarity.Compare(doc1, doc2)
	if err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(out))
}
