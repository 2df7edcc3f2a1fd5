// Command lexibuild tokenizes a sentence corpus and writes the
// per-language frequency lexicon.
//
// Usage:
//
//	lexibuild [-f input] [-o outdir] [-languages extra.yaml] [-no-ids] <language code>
//
// Input is read from stdin unless -f is given. An optional lexibuild.yaml
// in the working directory (or LEXIBUILD_* environment variables) supplies
// defaults for -o and -languages; flags win.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/lexibuild/lexibuild/pkg/lexibuild"
	"github.com/lexibuild/lexibuild/pkg/lexibuild/config"
	"github.com/lexibuild/lexibuild/pkg/lexibuild/languages"
)

func main() {
	var (
		inputPath = flag.String("f", "", "Input file (default: stdin)")
		outputDir = flag.String("o", "", "Output directory (required)")
		langsPath = flag.String("languages", "", "Extra language profiles (YAML)")
		noIDs     = flag.Bool("no-ids", false, "Lines are bare sentences without identifiers")
		list      = flag.Bool("list", false, "List built-in language codes and exit")
	)
	flag.Parse()

	initConfig()

	if *outputDir == "" {
		*outputDir = viper.GetString("output")
	}
	if *langsPath == "" {
		*langsPath = viper.GetString("languages")
	}

	var extra []languages.Language
	if *langsPath != "" {
		profiles, err := config.LoadLanguages(*langsPath)
		if err != nil {
			log.Fatal("Failed to load language profiles: ", err)
		}
		extra = profiles
	}

	if *list {
		for _, lang := range extra {
			fmt.Println(lang.Code)
		}
		for _, code := range languages.Codes() {
			fmt.Println(code)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lexibuild [-f input] [-o outdir] [-languages extra.yaml] [-no-ids] <language code>")
		os.Exit(2)
	}
	if *outputDir == "" {
		log.Fatal("-o required")
	}

	var input io.Reader = os.Stdin
	if *inputPath != "" {
		file, err := os.Open(*inputPath)
		if err != nil {
			log.Fatal("Failed to open input: ", err)
		}
		defer file.Close()
		input = file
	}

	err := lexibuild.Run(lexibuild.Options{
		Language:      flag.Arg(0),
		Input:         input,
		OutputDir:     *outputDir,
		NoIdentifiers: *noIDs,
		Extra:         extra,
	})
	if err != nil {
		log.Fatal(err)
	}
}

// initConfig reads the optional lexibuild.yaml config file and LEXIBUILD_*
// environment variables. A missing config file is not an error.
func initConfig() {
	viper.SetConfigName("lexibuild")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("lexibuild")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal("Failed to read config: ", err)
		}
	}
}
