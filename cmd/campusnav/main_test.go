package main

import (
	"bytes"
	"context"
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/backend"
)

const campusFile = "../../data/campus.dot"

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.Code
}

func TestRun_Usage(t *testing.T) {
	_, stderr, err := runCmd(t)
	require.Equal(t, 2, exitCode(t, err))
	require.Contains(t, stderr, "Usage:")

	stdout, _, err := runCmd(t, "help")
	require.NoError(t, err)
	require.Contains(t, stdout, "Commands:")

	_, _, err = runCmd(t, "teleport")
	require.Equal(t, 2, exitCode(t, err))
	require.ErrorContains(t, err, `unknown command "teleport"`)
}

func TestRun_Path(t *testing.T) {
	stdout, _, err := runCmd(t, "path", "-data", campusFile, "-log-level", "error",
		"-from", "Memorial Union", "-to", "Union South")
	require.NoError(t, err)
	require.Equal(t, "1. Memorial Union\n2. Science Hall\n3. Bascom Hall\n4. Chadbourne Hall\n5. Union South\nTotal time: 882.3 seconds\n", stdout)
}

func TestRun_PathHTML(t *testing.T) {
	stdout, _, err := runCmd(t, "path", "-data", campusFile, "-log-level", "error",
		"-from", "Union South", "-to", "Observatory", "-html")
	require.NoError(t, err)
	require.Contains(t, stdout, "There is no such path between Union South and Observatory.")
}

func TestRun_PathErrors(t *testing.T) {
	_, _, err := runCmd(t, "path", "-data", campusFile, "-from", "Memorial Union")
	require.Equal(t, 2, exitCode(t, err))

	_, _, err = runCmd(t, "path", "-data", campusFile, "-log-level", "error",
		"-from", "Nowhere", "-to", "Union South")
	require.Equal(t, backend.KindStartMissing, backend.KindOf(err))

	_, _, err = runCmd(t, "path", "-data", campusFile, "-log-level", "error",
		"-from", "Union South", "-to", "Observatory")
	require.Equal(t, backend.KindNoPath, backend.KindOf(err))

	_, _, err = runCmd(t, "path", "-data", "does-not-exist.dot", "-log-level", "error",
		"-from", "A", "-to", "B")
	require.Error(t, err)

	_, _, err = runCmd(t, "path", "-data", campusFile, "stray")
	require.Equal(t, 2, exitCode(t, err))
}

func TestRun_Longest(t *testing.T) {
	stdout, _, err := runCmd(t, "longest", "-data", campusFile, "-log-level", "error",
		"-from", "Memorial Union")
	require.NoError(t, err)
	require.Contains(t, stdout, "1. Memorial Union\n")
	require.Contains(t, stdout, "6. Camp Randall Stadium\n")
	require.Contains(t, stdout, "Locations: 6\n")

	_, _, err = runCmd(t, "longest", "-data", campusFile)
	require.Equal(t, 2, exitCode(t, err))
}

func TestRun_Locations(t *testing.T) {
	stdout, _, err := runCmd(t, "locations", "-data", campusFile, "-log-level", "error", "-prefix", "C")
	require.NoError(t, err)
	require.Equal(t, "Camp Randall Stadium\nChadbourne Hall\n", stdout)

	stdout, _, err = runCmd(t, "locations", "-data", campusFile, "-log-level", "error", "-limit", "2")
	require.NoError(t, err)
	require.Equal(t, "Bascom Hall\nCamp Randall Stadium\n", stdout)
}

func TestRun_HelpFlag(t *testing.T) {
	_, stderr, err := runCmd(t, "locations", "-h")
	require.NoError(t, err)
	require.Contains(t, stderr, "-prefix")
}

func TestRun_BadLogLevel(t *testing.T) {
	_, _, err := runCmd(t, "locations", "-data", campusFile, "-log-level", "chatty")
	require.Error(t, err)
}

func TestRun_FlagOverridesInvalidEnv(t *testing.T) {
	t.Setenv("CAMPUSNAV_LOG_LEVEL", "chatty")

	_, _, err := runCmd(t, "locations", "-data", campusFile)
	require.Error(t, err)

	stdout, _, err := runCmd(t, "locations", "-data", campusFile, "-log-level", "error", "-limit", "1")
	require.NoError(t, err)
	require.NotEmpty(t, stdout)
}

func TestRun_ServePortFlagOverridesInvalidEnv(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	t.Setenv("CAMPUSNAV_HTTP_HOST", "127.0.0.1")
	t.Setenv("CAMPUSNAV_HTTP_PORT", "70000")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err = run(ctx, []string{"serve", "-data", campusFile, "-log-level", "error", "-port", strconv.Itoa(port)}, &stdout, &stderr)
	require.NoError(t, err)
}

func TestRun_ServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	t.Setenv("CAMPUSNAV_HTTP_HOST", "127.0.0.1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err = run(ctx, []string{"serve", "-data", campusFile, "-log-level", "error", "-port", strconv.Itoa(port)}, &stdout, &stderr)
	require.NoError(t, err)
}

func TestRun_ServeBadData(t *testing.T) {
	_, _, err := runCmd(t, "serve", "-data", "does-not-exist.dot", "-log-level", "error")
	require.Error(t, err)
}
