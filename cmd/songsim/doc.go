// Command songsim stores songs, generates random lyrics and flags near-duplicate
// songs by cosine similarity over their word counts.
//
// Without a subcommand it starts the interactive menu. Subcommands cover
// one-shot use: tokenize, generate, check, lexicon and config.
package main
