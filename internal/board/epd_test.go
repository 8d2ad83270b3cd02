package board

import "testing"

func TestParseEPDBestMove(t *testing.T) {
	line := `r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - bm Ng5; id "test.1";`
	epd, err := ParseEPD(line)
	if err != nil {
		t.Fatalf("ParseEPD: %v", err)
	}
	if epd.Id != "test.1" {
		t.Errorf("Id = %q, want test.1", epd.Id)
	}
	if len(epd.BestMove) != 1 {
		t.Fatalf("BestMove = %v, want exactly one move", epd.BestMove)
	}
}

func TestParseEPDAnalysisOpcodes(t *testing.T) {
	line := `rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - acd 12; acn 500000; ce 34;`
	epd, err := ParseEPD(line)
	if err != nil {
		t.Fatalf("ParseEPD: %v", err)
	}
	if epd.ACD != 12 || epd.ACN != 500000 || epd.CE != 34 {
		t.Errorf("got acd=%d acn=%d ce=%d, want 12 500000 34", epd.ACD, epd.ACN, epd.CE)
	}
}

func TestParseEPDMissingFields(t *testing.T) {
	if _, err := ParseEPD("not an epd"); err == nil {
		t.Fatal("expected error for malformed EPD")
	}
}
