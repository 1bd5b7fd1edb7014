package service

import "math"

// EvaluateQuantity evaluates a quantity expression of the form
//
//	sum    = term { "+" term }
//	term   = number [ "/" number ]
//	number = digits [ "." digits ] | "." digits
//
// Whitespace is not allowed. It returns false for anything outside this
// grammar, including the empty string, division by zero and any value too
// large to be represented as a finite float64.
func EvaluateQuantity(expr string) (float64, bool) {
	p := quantityParser{src: expr}
	total, ok := p.sum()
	if !ok || p.pos != len(p.src) || !isFinite(total) {
		return 0, false
	}
	return total, true
}

type quantityParser struct {
	src string
	pos int
}

func (p *quantityParser) sum() (float64, bool) {
	total, ok := p.term()
	if !ok {
		return 0, false
	}
	for p.peek() == '+' {
		p.pos++
		v, ok := p.term()
		if !ok {
			return 0, false
		}
		total += v
		if !isFinite(total) {
			return 0, false
		}
	}
	return total, true
}

func (p *quantityParser) term() (float64, bool) {
	num, ok := p.number()
	if !ok || !isFinite(num) {
		return 0, false
	}
	if p.peek() != '/' {
		return num, true
	}
	p.pos++
	den, ok := p.number()
	if !ok || den == 0 || !isFinite(den) {
		return 0, false
	}
	v := num / den
	if !isFinite(v) {
		return 0, false
	}
	return v, true
}

func (p *quantityParser) number() (float64, bool) {
	var value float64
	intDigits := 0
	for isDigit(p.peek()) {
		value = value*10 + float64(p.src[p.pos]-'0')
		p.pos++
		intDigits++
	}

	if p.peek() != '.' {
		return value, intDigits > 0
	}
	p.pos++

	fracDigits := 0
	scale := 0.1
	for isDigit(p.peek()) {
		value += float64(p.src[p.pos]-'0') * scale
		scale /= 10
		p.pos++
		fracDigits++
	}
	return value, fracDigits > 0
}

func (p *quantityParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
