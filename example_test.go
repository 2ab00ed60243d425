package dynfmt_test

import (
	"errors"
	"fmt"
	"os"

	dynfmt "github.com/A1-Triard/dyn-fmt"
)

func ExampleFormat() {
	s, _ := dynfmt.Format("{}a{}b{}c", 1, 2)
	fmt.Println(s)
	s, _ = dynfmt.Format("{1:.3}a{:4.3}b{0:.2}c", 1.0, 2.123456)
	fmt.Println(s)
	// Output:
	// 1a2bc
	// 2.123a1.000b1.00c
}

func ExampleFormat_malformed() {
	_, err := dynfmt.Format("total: {0")
	var te *dynfmt.TemplateError
	if errors.As(err, &te) {
		fmt.Println(te.Offset, te.Reason)
	}
	// Output:
	// 7 unterminated placeholder
}

func ExampleNew() {
	fmt.Println(dynfmt.New("{{{}}}x", 1))
	// Output:
	// {1}x
}

func ExampleTemplate_Write() {
	row := dynfmt.Template("{:6}|{:>}")
	if err := row.Write(os.Stdout, "id", 7); err != nil {
		fmt.Println(err)
	}
	// Output:
	// malformed template at offset 5: unexpected '>' in placeholder {:>}
}
