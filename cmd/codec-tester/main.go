// Package main is a small conversion tester for the gopcm codecs.
//
// It converts textual sample or code values on the command line and prints
// one result per line, which makes it handy for spot-checking values
// against other G.711 / IMA ADPCM implementations:
//
//	codec-tester encode ulaw 3 130 221
//	codec-tester decode alaw 213
//	codec-tester encode adpcm 25 40 60 80 100 160 220
//
// The adpcm mode threads a zero-initialized stream state across the listed
// values, so the output matches the first codes (or samples) of a fresh
// IMA ADPCM stream.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/telecodec/gopcm"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: codec-tester {decode|encode} {ulaw|alaw|adpcm} values...")
}

func main() {
	if len(os.Args) < 4 {
		usage()
		os.Exit(1)
	}
	command, format := os.Args[1], os.Args[2]
	values := os.Args[3:]

	var state gopcm.IMAState
	for _, arg := range values {
		switch {
		case command == "decode" && format == "ulaw":
			code := parseUint8(arg)
			fmt.Println(gopcm.DecodeUlaw(code))
		case command == "decode" && format == "alaw":
			code := parseUint8(arg)
			fmt.Println(gopcm.DecodeAlaw(code))
		case command == "decode" && format == "adpcm":
			code := parseUint8(arg)
			var sample int16
			sample, state = gopcm.DecodeIMA(code, state)
			fmt.Println(sample)
		case command == "encode" && format == "ulaw":
			sample := parseInt16(arg)
			fmt.Println(gopcm.EncodeUlaw(sample))
		case command == "encode" && format == "alaw":
			sample := parseInt16(arg)
			fmt.Println(gopcm.EncodeAlaw(sample))
		case command == "encode" && format == "adpcm":
			sample := parseInt16(arg)
			var code uint8
			code, state = gopcm.EncodeIMA(sample, state)
			fmt.Println(code)
		default:
			fmt.Fprintf(os.Stderr, "ERROR: invalid command or format: %s, %s\n", command, format)
			os.Exit(1)
		}
	}
}

func parseUint8(arg string) uint8 {
	v, err := strconv.ParseUint(arg, 10, 8)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: bad value %q: %v\n", arg, err)
		os.Exit(1)
	}
	return uint8(v)
}

func parseInt16(arg string) int16 {
	v, err := strconv.ParseInt(arg, 10, 16)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: bad value %q: %v\n", arg, err)
		os.Exit(1)
	}
	return int16(v)
}
