package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/KilimcininKorOglu/obavi/internal/attrval"
	"github.com/KilimcininKorOglu/obavi/internal/textclass"
)

// classifyCmd handles the classify command.
func classifyCmd(args []string) int {
	fs := pflag.NewFlagSet("classify", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	policyName := fs.StringP("policy", "p", textclass.PolicyUTF8.String(), "Text policy: utf8, ascii, junk")
	hexInput := fs.Bool("hex", false, "Values are hex encoded")
	help := fs.BoolP("help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help {
		printClassifyUsage(stdout, fs.FlagUsages())
		return 0
	}

	if fs.NArg() == 0 {
		printError("at least one value is required")
		return 1
	}

	policy, err := textclass.ParsePolicy(*policyName)
	if err != nil {
		printError("%v", err)
		return 1
	}

	values := make([][]byte, 0, fs.NArg())
	for _, arg := range fs.Args() {
		if !*hexInput {
			values = append(values, []byte(arg))
			continue
		}
		b, err := hex.DecodeString(arg)
		if err != nil {
			printError("invalid hex value %q: %v", arg, err)
			return 1
		}
		values = append(values, b)
	}

	enc := attrval.NewEncoder(policy)
	for i, v := range values {
		fmt.Fprintf(stdout, "[%d] class=%s ldif-safe=%t\n",
			i+1, textclass.Classify(v, policy), textclass.SafeLDIF(v))
		for _, f := range []attrval.Format{attrval.FormatReview, attrval.FormatLDIF} {
			frag := enc.Encode(v, f)
			fmt.Fprintf(stdout, "    %-7s %-8s %s\n",
				f.String()+":", frag.Encoding, strconv.Quote(string(frag.Bytes())))
		}
	}
	return 0
}
