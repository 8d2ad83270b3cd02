package board

import (
	"fmt"
	"strconv"
	"strings"
)

// EPD is one parsed Extended Position Description record: a FEN-like
// position prefix (piece placement/side/castling/en-passant, no move
// counters) followed by semicolon-terminated opcodes.
type EPD struct {
	Position *Position
	Id       string
	BestMove []Move // bm opcode
	AvoidMove []Move // am opcode
	PV        []Move // pv opcode
	ACD       int    // analysis count depth
	ACN       int    // analysis count nodes
	CE        int    // centipawn evaluation
	Comment   map[string]string
}

// opcode handlers, dispatched by operator name, mirroring the zurichess
// notation package's handleMap approach.
var epdHandlers = map[string]func(*EPD, []string) error{
	"id": handleEPDId,
	"bm": handleEPDBestMove,
	"am": handleEPDAvoidMove,
	"pv": handleEPDPV,
	"acd": handleEPDInt(func(e *EPD, v int) { e.ACD = v }),
	"acn": handleEPDInt(func(e *EPD, v int) { e.ACN = v }),
	"ce":  handleEPDInt(func(e *EPD, v int) { e.CE = v }),
}

// ParseEPD parses one EPD record: the 4 position fields, then zero or more
// "<opcode> <arg>[ <arg>...];" operations.
func ParseEPD(line string) (*EPD, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, fmt.Errorf("invalid EPD: need at least 4 position fields, got %d", len(fields))
	}

	pos, err := ParseFEN(fields[0] + " " + fields[1] + " " + fields[2] + " " + fields[3] + " 0 1")
	if err != nil {
		return nil, fmt.Errorf("invalid EPD position: %w", err)
	}

	epd := &EPD{Position: pos, Comment: make(map[string]string)}

	rest := strings.Join(fields[4:], " ")
	for _, op := range splitEPDOperations(rest) {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		name, args, err := splitEPDOperation(op)
		if err != nil {
			return nil, err
		}
		if h, ok := epdHandlers[name]; ok {
			if err := h(epd, args); err != nil {
				return nil, fmt.Errorf("epd opcode %q: %w", name, err)
			}
		} else if strings.HasPrefix(name, "c") {
			// c0-c9 free-form comment opcodes.
			epd.Comment[name] = strings.Join(args, " ")
		}
	}

	return epd, nil
}

// splitEPDOperations splits on ';' respecting double-quoted arguments.
func splitEPDOperations(s string) []string {
	var ops []string
	var b strings.Builder
	inQuote := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == ';' && !inQuote:
			ops = append(ops, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	if strings.TrimSpace(b.String()) != "" {
		ops = append(ops, b.String())
	}
	return ops
}

// splitEPDOperation splits "name arg1 arg2..." into the opcode name and its
// whitespace-separated, quote-aware argument list.
func splitEPDOperation(op string) (string, []string, error) {
	fields := strings.Fields(op)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("empty operation")
	}
	name := strings.ToLower(fields[0])
	args := make([]string, len(fields)-1)
	for i, a := range fields[1:] {
		args[i] = strings.Trim(a, `"`)
	}
	return name, args, nil
}

func handleEPDId(e *EPD, args []string) error {
	e.Id = strings.Join(args, " ")
	return nil
}

func handleEPDBestMove(e *EPD, args []string) error {
	for _, a := range args {
		m, err := ParseSAN(a, e.Position)
		if err != nil {
			return fmt.Errorf("invalid bm move %q: %w", a, err)
		}
		e.BestMove = append(e.BestMove, m)
	}
	return nil
}

func handleEPDAvoidMove(e *EPD, args []string) error {
	for _, a := range args {
		m, err := ParseSAN(a, e.Position)
		if err != nil {
			return fmt.Errorf("invalid am move %q: %w", a, err)
		}
		e.AvoidMove = append(e.AvoidMove, m)
	}
	return nil
}

func handleEPDPV(e *EPD, args []string) error {
	pos := e.Position.Copy()
	for _, a := range args {
		m, err := ParseSAN(a, pos)
		if err != nil {
			return fmt.Errorf("invalid pv move %q: %w", a, err)
		}
		e.PV = append(e.PV, m)
		pos.MakeMove(m)
	}
	return nil
}

func handleEPDInt(set func(*EPD, int)) func(*EPD, []string) error {
	return func(e *EPD, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expects exactly one argument, got %d", len(args))
		}
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("not an integer: %w", err)
		}
		set(e, v)
		return nil
	}
}
