package settlement

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/settlement/date"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains the codecs used by order intake to hand instructions
// over. Both formats share the same field names:
//
//	entity, direction, agreedFx, currency, instructionDate, settlementDate, units, pricePerUnit
//
// Decoding is all or nothing: the first invalid record stops the decoding.

// record is the raw, textual form of an instruction as read from a file.
type record struct {
	Entity          text `json:"entity" csv:"entity"`
	Direction       text `json:"direction" csv:"direction"`
	AgreedFx        text `json:"agreedFx" csv:"agreedFx"`
	Currency        text `json:"currency" csv:"currency"`
	InstructionDate text `json:"instructionDate" csv:"instructionDate"`
	SettlementDate  text `json:"settlementDate" csv:"settlementDate"`
	Units           text `json:"units" csv:"units"`
	PricePerUnit    text `json:"pricePerUnit" csv:"pricePerUnit"`
}

// text is a string that can be read from a json string or a json number, in
// which case the number is kept verbatim to preserve exact decimals.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	switch {
	case string(b) == "null":
		*t = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
	default:
		*t = text(b)
	}
	return nil
}

func (t text) blank() bool { return strings.TrimSpace(string(t)) == "" }

// build converts the record into a Builder and builds it. Blank cells are
// left unset so that the Builder reports them as missing.
func (r record) build() (Instruction, error) {
	b := NewBuilder()
	if !r.Entity.blank() {
		e, err := ParseEntityType(string(r.Entity))
		if err != nil {
			return Instruction{}, err
		}
		b = b.WithEntityType(e)
	}
	if !r.Direction.blank() {
		d, err := ParseDirection(string(r.Direction))
		if err != nil {
			return Instruction{}, err
		}
		b = b.WithDirection(d)
	}
	if !r.AgreedFx.blank() {
		rate, err := decimal.NewFromString(strings.TrimSpace(string(r.AgreedFx)))
		if err != nil {
			return Instruction{}, invalid("agreed fx rate", fmt.Sprintf("%q is not a decimal", r.AgreedFx))
		}
		b = b.WithAgreedFxRate(rate)
	}
	b = b.WithCurrency(strings.TrimSpace(string(r.Currency)))
	if !r.InstructionDate.blank() {
		on, err := date.Parse(strings.TrimSpace(string(r.InstructionDate)))
		if err != nil {
			return Instruction{}, invalid("instruction date", err.Error())
		}
		b = b.WithInstructionDate(on)
	}
	if !r.SettlementDate.blank() {
		on, err := date.Parse(strings.TrimSpace(string(r.SettlementDate)))
		if err != nil {
			return Instruction{}, invalid("settlement date", err.Error())
		}
		b = b.WithSettlementDate(on)
	}
	if !r.Units.blank() {
		n, err := strconv.Atoi(strings.TrimSpace(string(r.Units)))
		if err != nil {
			return Instruction{}, invalid("units", fmt.Sprintf("%q is not an integer", r.Units))
		}
		b = b.WithUnits(n)
	}
	if !r.PricePerUnit.blank() {
		price, err := decimal.NewFromString(strings.TrimSpace(string(r.PricePerUnit)))
		if err != nil {
			return Instruction{}, invalid("price per unit", fmt.Sprintf("%q is not a decimal", r.PricePerUnit))
		}
		b = b.WithPricePerUnit(price)
	}
	return b.Build()
}

// MarshalJSON implements the json.Marshaler interface for Instruction. The
// settlement date is the resolved one.
func (i Instruction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("entity", i.entity)
	w.Append("direction", i.direction)
	w.Append("agreedFx", i.agreedFx)
	w.Append("currency", i.currency)
	w.Append("instructionDate", i.instructionDate)
	w.Append("settlementDate", i.settlementDate)
	w.Append("units", i.units)
	w.Append("pricePerUnit", i.pricePerUnit)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Instruction.
// The instruction is validated like a built one.
func (i *Instruction) UnmarshalJSON(b []byte) error {
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	ins, err := r.build()
	if err != nil {
		return err
	}
	*i = ins
	return nil
}

// DecodeInstructions decodes instructions from a stream of JSONL data, one
// instruction per line. Empty lines are skipped.
func DecodeInstructions(r io.Reader) ([]Instruction, error) {
	list := make([]Instruction, 0)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue // Skip empty lines
		}
		var ins Instruction
		if err := json.Unmarshal(lineBytes, &ins); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		list = append(list, ins)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading instructions: %w", err)
	}
	return list, nil
}

// EncodeInstructions writes instructions as JSONL, one instruction per line.
func EncodeInstructions(w io.Writer, list []Instruction) error {
	for _, ins := range list {
		b, err := json.Marshal(ins)
		if err != nil {
			return fmt.Errorf("cannot encode %v: %w", ins, err)
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// DecodeInstructionsCSV decodes instructions from CSV data with a header row
// naming the fields. Empty data holds no instructions.
func DecodeInstructionsCSV(r io.Reader) ([]Instruction, error) {
	var rows []*record
	err := gocsv.Unmarshal(r, &rows)
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return make([]Instruction, 0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read csv instructions: %w", err)
	}
	list := make([]Instruction, 0, len(rows))
	for k, row := range rows {
		ins, err := row.build()
		if err != nil {
			// header is line 1
			return nil, fmt.Errorf("line %d: %w", k+2, err)
		}
		list = append(list, ins)
	}
	return list, nil
}

// DecodeInstructionsFile decodes instructions from the named file. Files with
// a ".csv" extension are read as CSV, anything else as JSONL.
func DecodeInstructionsFile(name string) ([]Instruction, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var list []Instruction
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		list, err = DecodeInstructionsCSV(f)
	} else {
		list, err = DecodeInstructions(f)
	}
	if err != nil {
		return nil, fmt.Errorf("format error in %q: %w", name, err)
	}
	return list, nil
}
