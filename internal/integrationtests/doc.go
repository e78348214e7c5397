// Package integrationtests runs jucer2cmake end to end: arguments and
// environment through cli, the app run, and the file left on disk.
package integrationtests
