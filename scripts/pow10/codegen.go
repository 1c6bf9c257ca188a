package main

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"math/big"
	"os"
	"text/template"
)

// maxDecimals must match pairrate.MaxDecimals.
const maxDecimals = 38

type power struct {
	Exp int
	Hi  uint64
	Lo  uint64
}

const tableTmpl = `// Code generated by scripts/pow10/codegen.go. DO NOT EDIT.

package pairrate

// pow10Table holds 10^n for every n from 0 to [MaxDecimals].
var pow10Table = [MaxDecimals + 1]Uint128{
{{- range .}}
	{Hi: {{.Hi}}, Lo: {{.Lo}}}, // 1e{{.Exp}}
{{- end}}
}
`

func main() {
	// Compute the powers of ten
	pows, err := computePowers(maxDecimals)
	if err != nil {
		panic(fmt.Errorf("error computing powers: %v", err))
	}

	// Generate Go code from the powers using a template
	code, err := generateGoCode(pows)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("pow10_table.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func computePowers(n int) ([]power, error) {
	mask := new(big.Int).SetUint64(^uint64(0))
	ten := big.NewInt(10)
	p := big.NewInt(1)
	pows := []power{}
	for i := 0; i <= n; i++ {
		if p.BitLen() > 128 {
			return nil, fmt.Errorf("10^%v does not fit in 128 bits", i)
		}
		hi := new(big.Int).Rsh(p, 64)
		lo := new(big.Int).And(p, mask)
		pows = append(pows, power{Exp: i, Hi: hi.Uint64(), Lo: lo.Uint64()})
		p = new(big.Int).Mul(p, ten)
	}
	return pows, nil
}

func generateGoCode(pows []power) ([]byte, error) {
	tmpl, err := template.New("pow10_table").Parse(tableTmpl)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, pows)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
