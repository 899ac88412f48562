/*

mitab reads interaction files in the PSI-MI MITAB 2.5 format, as
distributed by BioGRID, IntAct and friends. Each line has fifteen tab
separated columns. The first line must be the standard header.

Usage:
 mitab [flags] command [args]

Commands:
  check FILE       parse everything, say how many records or where it broke
  parse FILE       print each record on one line
  namespaces FILE  list the namespaces of interactor A.
                   With --show NS, first list the identifiers in NS.
  summary FILE     csv of relation kinds per source database. -o writes to a file.
  load FILE        add records to the SQLite database
  partners NS:ID   list interactions of NS:ID in the database
  stats            count what is in the database

Flags:
  -c file   YAML config file, with skip_bad_rows, workers, database and
            log_level.
  -d path   database. Without this, $MITAB_DB or ~/.mitab/interactions.db
  -s        skip bad rows. They are logged to standard error.
  -v        debug logging
  -w N      parse with N workers. 0 means one per CPU.

Flags on the command line win over the config file.

Input may be gzip compressed. This is noticed from the first two bytes,
not the file name. "-" reads standard input.

By default the first bad row stops everything and the exit status is 1.
A wrong command line gives exit status 2.

Identifiers in the entrez namespace have a space in them, so quote them,
as in
  mitab partners 'entrez gene/locuslink:2318'

*/
package main
