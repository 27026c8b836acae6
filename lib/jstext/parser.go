package jstext

import "strconv"

// parser is a recursive-descent parser over the relaxed object-literal
// grammar: strict JSON plus unquoted identifier keys, single-quoted
// strings and trailing commas before a closing bracket or brace.
type parser struct {
	lex lexer
	tok token
}

func newParser(src string) (*parser, error) {
	p := &parser{lex: lexer{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) fail(msg string) error {
	return decodeErrorAt(p.lex.src, p.tok.offset, msg)
}

// DecodeRecords decodes an extracted array literal into its object
// records, in source order. Every element must be an object; anything the
// relaxed grammar cannot parse yields a *DecodeError carrying the
// offending text.
func DecodeRecords(literal string) ([]Record, error) {
	value, err := DecodeValue(literal)
	if err != nil {
		return nil, err
	}
	if value.Kind != KindArray {
		return nil, decodeErrorAt(literal, 0, "expected an array literal")
	}

	records := make([]Record, 0, len(value.Array))
	for _, el := range value.Array {
		if el.Kind != KindObject {
			return nil, decodeErrorAt(literal, 0, "array element is not an object")
		}
		records = append(records, Record{Members: el.Members})
	}
	return records, nil
}

// DecodeValue decodes a single relaxed-grammar value, rejecting trailing
// content after it.
func DecodeValue(src string) (Value, error) {
	p, err := newParser(src)
	if err != nil {
		return Value{}, err
	}
	value, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	if p.tok.kind != tokEOF {
		return Value{}, p.fail("trailing content after value")
	}
	return value, nil
}

func (p *parser) parseValue() (Value, error) {
	switch p.tok.kind {
	case tokString:
		v := Value{Kind: KindString, Str: p.tok.text}
		return v, p.advance()
	case tokNumber:
		n, err := strconv.ParseFloat(p.tok.text, 64)
		if err != nil {
			return Value{}, p.fail("malformed number")
		}
		v := Value{Kind: KindNumber, Number: n}
		return v, p.advance()
	case tokIdent:
		return p.parseIdentValue()
	case tokLBracket:
		return p.parseArray()
	case tokLBrace:
		return p.parseObject()
	}
	return Value{}, p.fail("expected a value")
}

func (p *parser) parseIdentValue() (Value, error) {
	var v Value
	switch p.tok.text {
	case "true":
		v = Value{Kind: KindBool, Bool: true}
	case "false":
		v = Value{Kind: KindBool}
	case "null", "undefined":
		v = Value{Kind: KindNull}
	default:
		// bare words show up as enum-ish values in the wild, keep them
		v = Value{Kind: KindString, Str: p.tok.text}
	}
	return v, p.advance()
}

func (p *parser) parseArray() (Value, error) {
	if err := p.advance(); err != nil { // consume '['
		return Value{}, err
	}

	elements := []Value{}
	for {
		if p.tok.kind == tokRBracket {
			break
		}
		el, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		elements = append(elements, el)

		if p.tok.kind == tokComma {
			if err := p.advance(); err != nil {
				return Value{}, err
			}
			continue // a trailing comma lands on ']' next iteration
		}
		break
	}

	if p.tok.kind != tokRBracket {
		return Value{}, p.fail("expected ',' or ']' in array")
	}
	return Value{Kind: KindArray, Array: elements}, p.advance()
}

func (p *parser) parseObject() (Value, error) {
	if err := p.advance(); err != nil { // consume '{'
		return Value{}, err
	}

	members := []Member{}
	for {
		if p.tok.kind == tokRBrace {
			break
		}

		var key string
		switch p.tok.kind {
		case tokString, tokIdent, tokNumber:
			key = p.tok.text
		default:
			return Value{}, p.fail("expected an object key")
		}
		if err := p.advance(); err != nil {
			return Value{}, err
		}

		if p.tok.kind != tokColon {
			return Value{}, p.fail("expected ':' after object key")
		}
		if err := p.advance(); err != nil {
			return Value{}, err
		}

		value, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: value})

		if p.tok.kind == tokComma {
			if err := p.advance(); err != nil {
				return Value{}, err
			}
			continue
		}
		break
	}

	if p.tok.kind != tokRBrace {
		return Value{}, p.fail("expected ',' or '}' in object")
	}
	return Value{Kind: KindObject, Members: members}, p.advance()
}
