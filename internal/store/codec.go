package store

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/roach88/siunit/internal/unit"
)

// encodeExponents packs a symbol-to-exponent map with sorted keys so the
// same dimension always yields the same bytes.
func encodeExponents(exps map[string]int) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(exps); err != nil {
		return nil, fmt.Errorf("encode exponents: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeExponents(data []byte) (map[string]int, error) {
	var exps map[string]int
	if err := msgpack.NewDecoder(bytes.NewReader(data)).Decode(&exps); err != nil {
		return nil, fmt.Errorf("decode exponents: %w", err)
	}
	return exps, nil
}

func encodeDimension(c unit.Composite) (base, slots []byte, err error) {
	base, err = encodeExponents(c.Base.Exponents())
	if err != nil {
		return nil, nil, err
	}
	slots, err = encodeExponents(c.Slots.NamedExponents())
	if err != nil {
		return nil, nil, err
	}
	return base, slots, nil
}

// decodeDimension is the inverse of encodeDimension. Symbols in the wrong
// blob are rejected.
func decodeDimension(base, slots []byte) (unit.Composite, error) {
	baseExps, err := decodeExponents(base)
	if err != nil {
		return unit.Composite{}, err
	}
	v, err := unit.FromExponents(baseExps)
	if err != nil {
		return unit.Composite{}, fmt.Errorf("base: %w", err)
	}
	if v.HasSlots() {
		return unit.Composite{}, fmt.Errorf("base: named unit in base blob")
	}

	slotExps, err := decodeExponents(slots)
	if err != nil {
		return unit.Composite{}, err
	}
	n, err := unit.FromExponents(slotExps)
	if err != nil {
		return unit.Composite{}, fmt.Errorf("slots: %w", err)
	}
	if !n.Base.IsUnitless() {
		return unit.Composite{}, fmt.Errorf("slots: base axis in slots blob")
	}

	return unit.Composite{Base: v.Base, Slots: n.Slots}, nil
}

func encodeErrors(errs []string) ([]byte, error) {
	if errs == nil {
		errs = []string{}
	}
	data, err := msgpack.Marshal(errs)
	if err != nil {
		return nil, fmt.Errorf("encode errors: %w", err)
	}
	return data, nil
}

func decodeErrors(data []byte) ([]string, error) {
	var errs []string
	if err := msgpack.Unmarshal(data, &errs); err != nil {
		return nil, fmt.Errorf("decode errors: %w", err)
	}
	if errs == nil {
		errs = []string{}
	}
	return errs, nil
}
