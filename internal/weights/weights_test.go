package weights

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"runtime"
	"strconv"
	"testing"

	solana "github.com/gagliardetto/solana-go"
)

func TestParamsStrings(t *testing.T) {
	params := CurrentParams()
	if params.TokenMult != "1000000000" {
		t.Fatalf("unexpected token mult %s", params.TokenMult)
	}
	if params.ExtraTokens != "290000000000000000" {
		t.Fatalf("unexpected extra tokens %s", params.ExtraTokens)
	}
	if params.SupplyFraction != "1000000000" {
		t.Fatalf("unexpected supply fraction %s", params.SupplyFraction)
	}
	if params.Network != Network {
		t.Fatalf("expected network %s, got %s", Network, params.Network)
	}
}

func TestTotalPlusExtraIsFullSupply(t *testing.T) {
	total, err := Total()
	if err != nil {
		t.Fatalf("Total returned error: %v", err)
	}
	if total+ExtraTokens != 1_000_000_000*TokenMult {
		t.Fatalf("expected locked + extra to equal 1e9 tokens, got %d", total+ExtraTokens)
	}
}

func TestLookup(t *testing.T) {
	list := VoterList()
	if len(list) == 0 {
		t.Fatalf("expected non-empty voter list")
	}
	weight, ok := Lookup(list[0].Address)
	if !ok || weight != list[0].Weight {
		t.Fatalf("lookup mismatch for %s: %d %v", list[0].Address, weight, ok)
	}
	if _, ok := Lookup(solana.NewWallet().PublicKey()); ok {
		t.Fatalf("expected random address to be absent")
	}
}

func TestVoterListIsCopy(t *testing.T) {
	list := VoterList()
	list[0].Weight = 0
	if VoterList()[0].Weight == 0 {
		t.Fatalf("VoterList must not expose internal storage")
	}
}

func TestSumOverflow(t *testing.T) {
	list := []Voter{{Weight: ^uint64(0)}, {Weight: 1}}
	if _, err := sum(list); err != ErrWeightOverflow {
		t.Fatalf("expected overflow error, got %v", err)
	}
}

func TestVoterListHasNoDuplicates(t *testing.T) {
	seen := make(map[solana.PublicKey]struct{}, len(voterList))
	for _, v := range voterList {
		if _, dup := seen[v.Address]; dup {
			t.Fatalf("duplicate voter %s", v.Address)
		}
		seen[v.Address] = struct{}{}
	}
}

func TestParamsMatchConstants(t *testing.T) {
	cases := map[string]struct {
		got  []byte
		want uint64
	}{
		"token mult":      {ParamTokenMult[:], TokenMult},
		"extra tokens":    {ParamExtraTokens[:], ExtraTokens},
		"supply fraction": {ParamSupplyFraction[:], SupplyFraction},
	}
	for name, tc := range cases {
		if string(tc.got) != strconv.FormatUint(tc.want, 10) {
			t.Fatalf("%s: param %q does not render %d", name, tc.got, tc.want)
		}
	}
}

// symbolBytes reads the initialized bytes of a data symbol from the running test binary.
func symbolBytes(t *testing.T, f *elf.File, name string, size int) []byte {
	t.Helper()
	syms, err := f.Symbols()
	if err != nil {
		t.Skipf("binary has no symbol table: %v", err)
	}
	for _, sym := range syms {
		if sym.Name != name {
			continue
		}
		if int(sym.Section) >= len(f.Sections) {
			t.Fatalf("%s has no section", name)
		}
		sect := f.Sections[sym.Section]
		if sect.Type == elf.SHT_NOBITS {
			t.Fatalf("%s lives in %s, which holds no file data", name, sect.Name)
		}
		buf := make([]byte, size)
		if _, err := sect.ReadAt(buf, int64(sym.Value-sect.Addr)); err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return buf
	}
	t.Fatalf("symbol %s not found", name)
	return nil
}

func TestCompiledTableIsStaticData(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("ELF inspection only")
	}
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("locate test binary: %v", err)
	}
	f, err := elf.Open(exe)
	if err != nil {
		t.Fatalf("open test binary: %v", err)
	}
	defer f.Close()

	// keep the symbols reachable
	params := CurrentParams()
	list := VoterList()

	const pkg = "governance-addins-go/internal/weights."
	if got := symbolBytes(t, f, pkg+"ParamExtraTokens", len(ParamExtraTokens)); string(got) != params.ExtraTokens {
		t.Fatalf("ParamExtraTokens in binary = %q, want %q", got, params.ExtraTokens)
	}
	if got := symbolBytes(t, f, pkg+"ParamTokenMult", len(ParamTokenMult)); string(got) != params.TokenMult {
		t.Fatalf("ParamTokenMult in binary = %q, want %q", got, params.TokenMult)
	}

	// each entry is a 32-byte address followed by a little-endian u64 weight
	raw := symbolBytes(t, f, pkg+"voterList", len(list)*40)
	for i, v := range list {
		entry := raw[i*40 : (i+1)*40]
		if !bytes.Equal(entry[:32], v.Address[:]) {
			t.Fatalf("entry %d address in binary does not match %s", i, v.Address)
		}
		if w := binary.LittleEndian.Uint64(entry[32:]); w != v.Weight {
			t.Fatalf("entry %d weight in binary = %d, want %d", i, w, v.Weight)
		}
	}
}
