package jsonc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse decodes strict JSON into a Value. Object member order is preserved,
// which encoding/json's map decoding would lose; numbers keep their
// int/float identity via json.Number.
func Parse(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, errors.New("failed to parse JSON: trailing content after document")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Value{Kind: KindNull}, nil
	case bool:
		return Value{Kind: KindBool, Bool: t}, nil
	case json.Number:
		return Value{Kind: KindNumber, Number: t}, nil
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func parseObject(dec *json.Decoder) (Value, error) {
	v := Value{Kind: KindObject}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		child, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		v.Members = append(v.Members, Member{Key: key, Value: child})
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return v, nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	v := Value{Kind: KindArray}
	for dec.More() {
		child, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		v.Items = append(v.Items, child)
	}
	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return v, nil
}
