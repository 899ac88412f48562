// Package mitab reads molecular interaction files in MITAB 2.5 format.
//
// A file is a header line followed by data lines. Every line has exactly
// fifteen tab separated columns. Columns come in a few flavours.
// 1. A compound identifier, database:identifier, like
//    entrez gene/locuslink:6416
// 2. A list of things separated by "|". Repeats do not matter, so they
// go into a set.
// 3. Interaction types, written as namespace:value(free text), like
//    psi-mi:"MI:0407"(direct interaction)
// The quotes around the value are decoration. Some producers write them,
// some do not and some escape them with a backslash.
// 4. Plain strings which we leave alone.
//
// A "-" means a column is empty. For plain string columns we keep the
// "-" as it is. For identifier and interaction type columns it gives an
// empty set, since "-" is not something either grammar accepts.
//
// The entry points are ParseLines, which works on anything that can
// give us lines, and ParseParallel, which wants them all in memory.
// Reading from files or compressed files lives in package mitabio.
//
// Of the PSI-MI interaction types, we only know seven. Classify maps them
// to a RelationKind. Everything else is Unclassified, which is not an
// error.
package mitab
