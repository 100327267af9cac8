// Package scaffold generates a WordPress plugin skeleton from embedded
// templates. It powers the root wpscaffold command: it checks that the
// plugin root does not exist yet, creates the admin/public/includes folder
// layout, and renders the main plugin file, activator, deactivator, core
// class, and readme.txt.
//
// Creation stops at the first failure. Whatever was written before the
// failure stays on disk.
package scaffold
