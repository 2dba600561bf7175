// Package results loads precomputed model-evaluation tables.
//
// Each calculation kind has one results file per evaluation run, named
//
//	test_eval__{KIND}__{DATE}.csv
//
// optionally followed by a compression extension (.zst, .s2, .lz4). A file
// holds one AACE reference row (is_aace or is_reference) and any number of
// candidate rows with their equation label, stored test-set MdAPE and RMSE,
// an is_log_y flag and one coefficient column per term. Missing or
// unparseable coefficient cells drop the term rather than failing the load.
package results
