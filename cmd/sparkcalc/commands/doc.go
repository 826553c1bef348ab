// Package commands defines the sparkcalc CLI.
//
// Commands
//
//   - (root)   Open the calculator window, or run it headless with --headless
//   - eval     Evaluate expressions and print their results
//   - press    Drive the keypad by button labels and print the final state
//   - version  Print build information
//
// The root command loads the TOML config and sets up logging before any subcommand runs.
package commands
