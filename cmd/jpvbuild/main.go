// Command jpvbuild builds a dictionary index image from local, already
// decompressed JMdict/KANJIDIC2 XML files and runs one illustrative prefix
// search against it. It does not fetch or decompress
// anything itself — that stays outside the core engine's scope.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lanastasov/jpv"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	jmdictPath := flag.String("jmdict", "", "path to a decompressed JMdict XML file")
	kanjidicPath := flag.String("kanjidic", "", "path to a decompressed KANJIDIC2 XML file")
	outPath := flag.String("out", "jpv.index", "output path for the built index image")
	query := flag.String("query", "食べる", "a word to look up once the index is built")
	flag.Parse()

	if *jmdictPath == "" && *kanjidicPath == "" {
		fmt.Fprintln(os.Stderr, "jpvbuild: need at least one of -jmdict or -kanjidic")
		os.Exit(1)
	}

	var inputs []jpv.Input
	if *jmdictPath != "" {
		data, err := os.ReadFile(*jmdictPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *jmdictPath).Msg("reading JMdict")
		}
		inputs = append(inputs, jpv.Input{Kind: jpv.SourceJMdict, Data: data})
	}
	if *kanjidicPath != "" {
		data, err := os.ReadFile(*kanjidicPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *kanjidicPath).Msg("reading KANJIDIC2")
		}
		inputs = append(inputs, jpv.Input{Kind: jpv.SourceKanjiDic2, Data: data})
	}

	img, err := jpv.Build(*outPath, inputs...)
	if err != nil {
		log.Fatal().Err(err).Msg("build failed")
	}
	if err := os.WriteFile(*outPath, img, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", *outPath).Msg("writing index image")
	}
	log.Info().Str("path", *outPath).Int("bytes", len(img)).Msg("wrote index image")

	ix, err := jpv.Open(img)
	if err != nil {
		log.Fatal().Err(err).Msg("opening just-built index")
	}
	defer ix.Close()

	results := ix.Search(*query, jpv.SearchAsIs)
	fmt.Printf("%d result(s) for %q:\n", len(results), *query)
	for _, r := range results {
		glosses := ""
		if len(r.Entry.Senses) > 0 {
			for i, g := range r.Entry.Senses[0].Glosses {
				if i > 0 {
					glosses += "; "
				}
				glosses += g
			}
		}
		fmt.Printf("  #%d %s\n", r.Entry.Sequence, glosses)
	}
}
