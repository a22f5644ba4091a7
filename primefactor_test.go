package primefactor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jlauinger/primefactor/arith"
)

var r128 = arith.Ring128{}

func mustU128(t *testing.T, s string) arith.U128 {
	t.Helper()
	v, err := arith.ParseU128(s)
	require.NoError(t, err)
	return v
}

func u128Factors(t *testing.T, ss ...string) []arith.U128 {
	t.Helper()
	out := make([]arith.U128, len(ss))
	for i, s := range ss {
		out[i] = mustU128(t, s)
	}
	return out
}

func TestFactorizeFermatTwoCloseFactors(t *testing.T) {
	cases := []struct {
		num     string
		factors []string
	}{
		{"4087", []string{"61", "67"}},
		{"4_611_686_014_132_420_609", []string{"2_147_483_647", "2_147_483_647"}},
		{"1_070_271_221", []string{"32_713", "32_717"}},
		{
			"1_298_074_214_633_694_657_341_637_634_584_803",
			[]string{"36_028_797_018_963_797", "36_028_797_018_963_799"},
		},
		{
			"5_316_911_983_139_663_487_003_542_222_693_990_401",
			[]string{"2_305_843_009_213_693_951", "2_305_843_009_213_693_951"},
		},
	}

	for _, c := range cases {
		num := mustU128(t, c.num)
		f := &Factorization[arith.U128]{Num: num, ring: r128}

		back := f.factorizeFermat(num, 2)

		require.True(t, r128.IsOne(back), c.num)
		require.Equal(t, u128Factors(t, c.factors...), f.Factors, c.num)
	}
}

func TestFactorizeFermatPrimePowers(t *testing.T) {
	cases := []struct {
		num   string
		base  string
		count int
	}{
		{"6_806_881", "2609", 2},
		{"9_555_603_847_167_361", "9887", 4},
		{"416_997_623_116_370_028_124_580_469_121", "71", 16},
		{"91_309_564_883_999_670_239_903_543_704_321", "9887", 8},
		{"20_282_403_559_023_247_890_711_928_898_161", "67_108_859", 4},
	}

	for _, c := range cases {
		num := mustU128(t, c.num)
		f := &Factorization[arith.U128]{Num: num, ring: r128}

		back := f.factorizeFermat(num, 2)

		require.True(t, r128.IsOne(back), c.num)
		base := mustU128(t, c.base)
		expected := make([]arith.U128, c.count)
		for i := range expected {
			expected[i] = base
		}
		require.Equal(t, expected, f.Factors, c.num)
	}
}

func TestFactorizeFermatMixedCases(t *testing.T) {
	cases := []struct {
		num     string
		factors []string
	}{
		{"20_449", []string{"11", "11", "13", "13"}},
		{"4_279_219_432_242_049", []string{"8087", "8087", "8089", "8089"}},
		{
			"391_250_187_374_953_765_002_698_920_081",
			[]string{"4999", "4999", "4999", "4999", "5003", "5003", "5003", "5003"},
		},
	}

	for _, c := range cases {
		num := mustU128(t, c.num)
		f := &Factorization[arith.U128]{Num: num, ring: r128}

		back := f.factorizeFermat(num, 2)

		require.True(t, r128.IsOne(back), c.num)

		f.pruneDuplicateFactors()
		require.Equal(t, u128Factors(t, c.factors...), f.Factors, c.num)
	}
}

func TestRunTwoFactorProducts(t *testing.T) {
	cases := []struct {
		num     string
		factors []string
	}{
		{"2_854_159_729_781", []string{"718_433", "3_972_757"}},
		{"25_645_121_643_901_801", []string{"5_394_769", "4_753_701_529"}},
		{"9_804_659_461_513_846_513", []string{"4_641_991", "2_112_166_839_943"}},
		{"19_326_223_710_861_634_601", []string{"3_267_000_013", "5_915_587_277"}},
		{"3_746_238_285_234_848_709_827", []string{"103_979", "36_028_797_018_963_913"}},
	}

	for _, c := range cases {
		num := mustU128(t, c.num)
		result := Run(r128, num)

		require.False(t, result.IsPrime, c.num)
		require.Equal(t, u128Factors(t, c.factors...), result.Factors, c.num)
	}
}

func TestRunMultipleFactors(t *testing.T) {
	cases := []struct {
		num     string
		factors []string
	}{
		{"244_334_639", []string{"9199", "26_561"}},
		{"36_810_991_936_224_521", []string{"9791", "13_159", "16_903", "16_903"}},
		{
			"2_776_889_953_055_853_600_532_696_901",
			[]string{"11_560_410_863_851", "240_206_856_465_551"},
		},
		{
			"90_124_258_835_295_998_242_413_094_252_351",
			[]string{"18_812_497_391", "4_790_658_941_348_846_576_561"},
		},
		{
			"2_082_064_493_491_567_088_228_629_031_592_644_077",
			[]string{"434_609_209_084_157", "4_790_658_941_348_846_576_561"},
		},
		{
			"252_458_274_525_971_054_424_244_242_423_424_245_235",
			[]string{"5", "416_797", "589_360_206_969_257", "205_548_452_538_501_643"},
		},
		{
			"340_282_366_920_938_463_463_374_607_431_768_211_455",
			[]string{"3", "5", "17", "257", "641", "65_537", "274_177", "6_700_417", "67_280_421_310_721"},
		},
	}

	for _, c := range cases {
		num := mustU128(t, c.num)
		result := Run(r128, num)

		require.False(t, result.IsPrime, c.num)
		require.Equal(t, u128Factors(t, c.factors...), result.Factors, c.num)
	}
}

func TestRunPrimeInput(t *testing.T) {
	num := mustU128(t, "7927")
	result := Run(r128, num)

	require.True(t, result.IsPrime)
	require.Equal(t, []arith.U128{num}, result.Factors)
}

func TestRunSmallEdgeCases(t *testing.T) {
	require.Empty(t, Run(r128, arith.U128FromUint64(0)).Factors)
	require.Empty(t, Run(r128, arith.U128FromUint64(1)).Factors)
}

func TestRunWithStatsRecordsCounters(t *testing.T) {
	num := mustU128(t, "244_334_639")
	result := Run(r128, num, WithStats())

	require.NotNil(t, result.Stats)
	require.Greater(t, result.Stats.TrialDivisionHits+result.Stats.FermatRounds+result.Stats.CurvesAttempted, 0)
}
