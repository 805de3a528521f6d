// Command mrn generates valid customs Movement Reference Numbers and
// prints one per line to standard output.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/iByteABit256/MRN-Generator/internal/domain"
	"github.com/iByteABit256/MRN-Generator/internal/mrn"
)

func main() {
	var (
		countryCode       string
		numberOfMrns      int
		procedureCategory string
		combinedCategory  string
		declarationOffice string
	)

	flag.StringVar(&countryCode, "c", "", "country code of MRN (required)")
	flag.StringVar(&countryCode, "country-code", "", "country code of MRN (required)")
	flag.IntVar(&numberOfMrns, "n", 1, "number of MRNs to generate")
	flag.IntVar(&numberOfMrns, "number-of-mrns", 1, "number of MRNs to generate")
	flag.StringVar(&procedureCategory, "p", "", "procedure category")
	flag.StringVar(&procedureCategory, "procedure-category", "", "procedure category")
	flag.StringVar(&combinedCategory, "C", "", "combined procedure category")
	flag.StringVar(&combinedCategory, "combined", "", "combined procedure category")
	flag.StringVar(&declarationOffice, "o", "", "customs office of declaration")
	flag.StringVar(&declarationOffice, "declaration-office", "", "customs office of declaration")
	flag.Parse()

	if countryCode == "" {
		fmt.Fprintln(os.Stderr, "error: country code is required")
		flag.Usage()
		os.Exit(2)
	}

	if numberOfMrns < 1 {
		fmt.Fprintln(os.Stderr, "error: number of MRNs must be a positive integer")
		os.Exit(2)
	}

	year := time.Now().Format("06")

	req, err := domain.NewGenerationRequest(
		countryCode,
		declarationOffice,
		procedureCategory,
		combinedCategory,
		year,
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	// One generator for the whole run; every MRN draws from the same
	// unbroken sequence.
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))

	for i := 0; i < numberOfMrns; i++ {
		generated, err := mrn.Generate(req, rng)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Println(generated)
	}
}
