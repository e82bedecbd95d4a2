package report

import (
	"bytes"
	"encoding/json"
	"testing"

	solana "github.com/gagliardetto/solana-go"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"governance-addins-go/internal/journal"
	"governance-addins-go/internal/vesting"
	"governance-addins-go/internal/weights"
)

func key(b byte) solana.PublicKey {
	return solana.PublicKeyFromBytes(bytes.Repeat([]byte{b}, 32))
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func sampleRecord(realm *solana.PublicKey) *vesting.Record {
	return &vesting.Record{
		AccountType: vesting.AccountVestingRecord,
		Owner:       key(1),
		Mint:        key(2),
		Token:       key(3),
		Realm:       realm,
		Schedule: []vesting.Schedule{
			{ReleaseTime: 1_700_000_000, Amount: 500},
			{ReleaseTime: 1_702_592_000, Amount: 1_500},
		},
	}
}

func TestInfoText(t *testing.T) {
	view, err := NewRecordView(key(5), sampleRecord(nil))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).Info(key(9), view))
	golden(t).Assert(t, "info", buf.Bytes())
}

func TestRecordsText(t *testing.T) {
	realm := key(4)
	first, err := NewRecordView(key(5), sampleRecord(nil))
	require.NoError(t, err)
	second, err := NewRecordView(key(6), sampleRecord(&realm))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).Records([]RecordView{first, second}))
	golden(t).Assert(t, "records", buf.Bytes())
}

func TestScheduleText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).Schedule(sampleRecord(nil).Schedule))
	golden(t).Assert(t, "schedule", buf.Bytes())
}

func TestListText(t *testing.T) {
	rows := []ListRow{
		{Token: key(3), Owner: key(1), Amount: 1_500_000_000},
		{Token: key(6), Owner: key(2), Amount: 250_000_000_123},
	}
	SortRows(rows)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).List(rows))
	golden(t).Assert(t, "list", buf.Bytes())
}

func TestWeightsText(t *testing.T) {
	params := weights.Params{
		Network:        "test",
		TokenMult:      "1000000000",
		ExtraTokens:    "290000000000000000",
		SupplyFraction: "1000000000",
	}
	voters := []weights.Voter{{Address: key(1), Weight: 600}, {Address: key(2), Weight: 400}}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).Weights(params, voters, 1_000))
	golden(t).Assert(t, "weights", buf.Bytes())
}

func TestSortRowsIsStableDescending(t *testing.T) {
	rows := []ListRow{
		{Token: key(1), Amount: 5},
		{Token: key(2), Amount: 9},
		{Token: key(3), Amount: 5},
	}
	SortRows(rows)
	assert.Equal(t, []solana.PublicKey{key(2), key(1), key(3)}, []solana.PublicKey{rows[0].Token, rows[1].Token, rows[2].Token})
}

func TestInfoJSON(t *testing.T) {
	realm := key(4)
	view, err := NewRecordView(key(5), sampleRecord(&realm))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON).Info(key(9), view))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, key(9).String(), decoded["program_id"])
	assert.Equal(t, key(5).String(), decoded["vesting_account"])
	assert.Equal(t, realm.String(), decoded["realm"])
	assert.Equal(t, float64(2_000), decoded["total"])
	assert.Len(t, decoded["schedule"], 2)
}

func TestListJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON).List(nil))
	assert.JSONEq(t, `{"total":0,"accounts":[]}`, buf.String())
}

func TestListOverflow(t *testing.T) {
	rows := []ListRow{{Amount: ^uint64(0)}, {Amount: 1}}
	err := New(&bytes.Buffer{}, FormatText).List(rows)
	assert.ErrorIs(t, err, vesting.ErrAmountOverflow)
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, IsValidFormat("text"))
	assert.True(t, IsValidFormat("json"))
	assert.False(t, IsValidFormat("yaml"))
}

func dryRunEntry() journal.Entry {
	return journal.Entry{
		Command:       "split",
		Signature:     "3sig",
		Status:        journal.StatusDryRun,
		ComputeUnits:  11_330,
		PriorityPrice: 25,
		Accounts: map[string]string{
			"vesting_token":     key(3).String(),
			"new_vesting_owner": key(1).String(),
		},
	}
}

func TestDryRunText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).DryRun(dryRunEntry()))
	golden(t).Assert(t, "dryrun", buf.Bytes())
}

func TestDryRunJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON).DryRun(dryRunEntry()))

	var got journal.Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, journal.StatusDryRun, got.Status)
	assert.Equal(t, uint32(11_330), got.ComputeUnits)
	assert.Equal(t, key(3).String(), got.Accounts["vesting_token"])
}
