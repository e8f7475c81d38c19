package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/bigint"
)

// EvalError is the class of errors for malformed expressions.
var EvalError = errs.Class("eval")

type op struct {
	// arity is the number of operands popped; -1 pops the whole stack.
	arity int
	fn    func(args []*bigint.Int) ([]*bigint.Int, error)
}

func unary(fn func(z, x *bigint.Int) *bigint.Int) op {
	return op{1, func(args []*bigint.Int) ([]*bigint.Int, error) {
		return []*bigint.Int{fn(new(bigint.Int), args[0])}, nil
	}}
}

func binary(fn func(z, x, y *bigint.Int) *bigint.Int) op {
	return op{2, func(args []*bigint.Int) ([]*bigint.Int, error) {
		return []*bigint.Int{fn(new(bigint.Int), args[0], args[1])}, nil
	}}
}

// counted applies fn with the top of the stack converted to a uint.
func counted(fn func(z, x *bigint.Int, n uint) *bigint.Int) op {
	return op{2, func(args []*bigint.Int) ([]*bigint.Int, error) {
		n, err := bigint.ToInteger[uint](args[1])
		if err != nil {
			return nil, err
		}

		return []*bigint.Int{fn(new(bigint.Int), args[0], n)}, nil
	}}
}

var ops = map[string]op{
	"+":      binary((*bigint.Int).Add),
	"-":      binary((*bigint.Int).Sub),
	"*":      binary((*bigint.Int).Mul),
	"/":      binary((*bigint.Int).Quo),
	"%":      binary((*bigint.Int).Rem),
	"fdiv":   binary((*bigint.Int).DivFloor),
	"fmod":   binary((*bigint.Int).ModFloor),
	"cdiv":   binary((*bigint.Int).DivCeil),
	"abssub": binary((*bigint.Int).AbsSub),
	"&":      binary((*bigint.Int).And),
	"|":      binary((*bigint.Int).Or),
	"^":      binary((*bigint.Int).Xor),
	"andnot": binary((*bigint.Int).AndNot),
	"gcd":    binary((*bigint.Int).GCD),
	"lcm":    binary((*bigint.Int).LCM),
	"next":   binary((*bigint.Int).NextMultipleOf),
	"prev":   binary((*bigint.Int).PrevMultipleOf),
	"~":      unary((*bigint.Int).Not),
	"neg":    unary((*bigint.Int).Neg),
	"abs":    unary((*bigint.Int).Abs),
	"signum": unary((*bigint.Int).Signum),
	"sqrt":   unary((*bigint.Int).Sqrt),
	"cbrt":   unary((*bigint.Int).Cbrt),
	"<<":     counted((*bigint.Int).Lsh),
	">>":     counted((*bigint.Int).Rsh),
	"root":   counted((*bigint.Int).NthRoot),
	"pow": {2, func(args []*bigint.Int) ([]*bigint.Int, error) {
		e, err := bigint.ToInteger[uint64](args[1])
		if err != nil {
			return nil, err
		}

		return []*bigint.Int{new(bigint.Int).Pow(args[0], e)}, nil
	}},
	"modpow": {3, func(args []*bigint.Int) ([]*bigint.Int, error) {
		return []*bigint.Int{new(bigint.Int).ModPow(args[0], args[1], args[2])}, nil
	}},
	"divrem": {2, func(args []*bigint.Int) ([]*bigint.Int, error) {
		q, r := new(bigint.Int).DivRem(args[0], args[1], new(bigint.Int))
		return []*bigint.Int{q, r}, nil
	}},
	"divmod": {2, func(args []*bigint.Int) ([]*bigint.Int, error) {
		q, m := new(bigint.Int).DivModFloor(args[0], args[1], new(bigint.Int))
		return []*bigint.Int{q, m}, nil
	}},
	"egcd": {2, func(args []*bigint.Int) ([]*bigint.Int, error) {
		g, x, y := bigint.ExtendedGCD(args[0], args[1])
		return []*bigint.Int{g, x, y}, nil
	}},
	"dup": {1, func(args []*bigint.Int) ([]*bigint.Int, error) {
		return []*bigint.Int{args[0], args[0].Clone()}, nil
	}},
	"swap": {2, func(args []*bigint.Int) ([]*bigint.Int, error) {
		return []*bigint.Int{args[1], args[0]}, nil
	}},
	"drop": {1, func(args []*bigint.Int) ([]*bigint.Int, error) {
		return nil, nil
	}},
	"sum": {-1, func(args []*bigint.Int) ([]*bigint.Int, error) {
		return []*bigint.Int{bigint.Sum(args...)}, nil
	}},
	"product": {-1, func(args []*bigint.Int) ([]*bigint.Int, error) {
		return []*bigint.Int{bigint.Product(args...)}, nil
	}},
}

// apply runs o on the stack. Domain errors (division by zero, even roots of
// negative values, ...) panic in package bigint and are returned here.
func (o op) apply(stack []*bigint.Int) (_ []*bigint.Int, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(error)
		if !ok || !bigint.DomainError.Has(e) {
			panic(r)
		}

		err = e
	}()

	n := o.arity
	if n < 0 {
		n = len(stack)
	}

	if len(stack) < n {
		return nil, EvalError.New("stack underflow: need %d operands, have %d", n, len(stack))
	}

	results, err := o.fn(stack[len(stack)-n:])
	if err != nil {
		return nil, err
	}

	return append(stack[:len(stack)-n], results...), nil
}

// eval evaluates a reverse polish expression and returns the final stack.
func eval(tokens []string, radix int) (stack []*bigint.Int, err error) {
	for i, tok := range tokens {
		if o, ok := ops[strings.ToLower(tok)]; ok {
			stack, err = o.apply(stack)
			if err != nil {
				return nil, EvalError.New("token %d (%q): %v", i, tok, err)
			}

			continue
		}

		x, err := bigint.Parse(tok, radix)
		if err != nil {
			return nil, EvalError.New("token %d: %v", i, err)
		}

		stack = append(stack, x)
	}

	return stack, nil
}

func printStack(w io.Writer, stack []*bigint.Int, radix int) {
	for _, x := range stack {
		fmt.Fprintln(w, x.Text(radix))
	}
}

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval token...",
		Short: "Evaluate a reverse polish expression",
		Long: `Evaluate a reverse polish expression and print the resulting stack,
one value per line from the bottom.

Operators:
  + - * / %            add, subtract, multiply, truncated quotient and remainder
  fdiv fmod divmod     floor quotient, modulo and both
  cdiv divrem          ceiling quotient, truncated quotient and remainder
  & | ^ ~ andnot       two's complement bitwise logic
  << >>                shifts (right shifts round toward negative infinity)
  pow modpow           exponentiation and modular exponentiation
  sqrt cbrt root       integer roots
  gcd lcm egcd         greatest common divisor, least common multiple, Bezout
  next prev            next and previous multiple
  neg abs signum abssub
  dup swap drop sum product`,
		Example: `  bigint eval 2 100 pow 1 -
  bigint eval -- -7 2 divmod
  bigint --radix 16 eval ff 1 '<<'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := eval(args, opts.Radix)
			if err != nil {
				return err
			}

			printStack(cmd.OutOrStdout(), stack, opts.Radix)

			return nil
		},
	}
}
