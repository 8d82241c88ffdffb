package supervisor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"cartadesk/internal/hostenv"
	"cartadesk/internal/logging"
)

// Error categories terminal for a launch attempt.
var (
	ErrSpawnFailed      = errors.New("backend spawn failed")
	ErrBackendExited    = errors.New("backend exited before becoming ready")
	ErrReadinessTimeout = errors.New("backend readiness timeout")
)

// State tracks the supervisor lifecycle. Transitions only move forward;
// early process death jumps straight to StateTerminated.
type State int

const (
	StateNotStarted State = iota
	StateSpawning
	StateAwaitingReady
	StateReady
	StateShuttingDown
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateSpawning:
		return "spawning"
	case StateAwaitingReady:
		return "awaiting-ready"
	case StateReady:
		return "ready"
	case StateShuttingDown:
		return "shutting-down"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

const (
	authTokenEnv   = "CARTA_AUTH_TOKEN"
	casaPathEnv    = "CASAPATH"
	libraryPathEnv = "LD_LIBRARY_PATH"
)

// Options configures a Supervisor. Zero durations fall back to the defaults
// the desktop build has always shipped with.
type Options struct {
	Environment    hostenv.Environment
	Logger         *slog.Logger
	ReadyTimeout   time.Duration
	ConnectTimeout time.Duration
	RetryInterval  time.Duration

	// Stdout and Stderr receive the backend's drained output; they default
	// to the launcher's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

const (
	defaultReadyTimeout   = 20 * time.Second
	defaultConnectTimeout = 250 * time.Millisecond
	defaultRetryInterval  = 100 * time.Millisecond
)

// LaunchSpec carries everything Spawn needs, already resolved and validated.
// Paths must be in host addressing; the supervisor translates them through
// the environment right before spawn.
type LaunchSpec struct {
	BackendExecutable string
	FrontendAssets    string
	BaseDirectory     string
	CasaPath          string
	LibraryDir        string
	Port              int
	Passthrough       []string
}

// Supervisor owns at most one backend process per launcher instance.
type Supervisor struct {
	env            hostenv.Environment
	logger         *slog.Logger
	readyTimeout   time.Duration
	connectTimeout time.Duration
	retryInterval  time.Duration
	stdout         io.Writer
	stderr         io.Writer

	token string

	mu    sync.Mutex
	state State
	cmd   *exec.Cmd

	// waitDone is closed by the single reaper goroutine once cmd.Wait
	// returns; waitErr is written before the close and read only after
	// observing it.
	waitDone chan struct{}
	waitErr  error
}

// New constructs a supervisor. The auth token is generated here, before any
// spawn, and never changes for the supervisor's lifetime.
func New(opts Options) *Supervisor {
	env := opts.Environment
	if env == nil {
		env = hostenv.Detect()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Supervisor{
		env:            env,
		logger:         logger,
		readyTimeout:   opts.ReadyTimeout,
		connectTimeout: opts.ConnectTimeout,
		retryInterval:  opts.RetryInterval,
		stdout:         opts.Stdout,
		stderr:         opts.Stderr,
		token:          uuid.NewString(),
		state:          StateNotStarted,
	}
	if s.readyTimeout <= 0 {
		s.readyTimeout = defaultReadyTimeout
	}
	if s.connectTimeout <= 0 {
		s.connectTimeout = defaultConnectTimeout
	}
	if s.retryInterval <= 0 {
		s.retryInterval = defaultRetryInterval
	}
	if s.stdout == nil {
		s.stdout = os.Stdout
	}
	if s.stderr == nil {
		s.stderr = os.Stderr
	}
	return s
}

// AuthToken returns the opaque token the GUI layer presents to the backend.
func (s *Supervisor) AuthToken() string { return s.token }

// State returns the current lifecycle state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Ready reports whether the backend accepted a TCP connection and is still
// under supervision.
func (s *Supervisor) Ready() bool {
	return s.State() == StateReady
}

var errAlreadyStarted = fmt.Errorf("%w: supervisor already used", ErrSpawnFailed)

// Start spawns the backend and blocks until it is ready or the launch fails.
// On any failure the partially started process is shut down before the error
// is returned; a failed launch never leaves an orphaned backend behind.
func (s *Supervisor) Start(spec LaunchSpec) error {
	if err := s.spawn(spec); err != nil {
		// A second Start against a live supervisor must not kill the
		// process the first one owns.
		if !errors.Is(err, errAlreadyStarted) {
			s.Shutdown()
		}
		return err
	}
	if err := s.awaitReady(spec.Port); err != nil {
		s.Shutdown()
		return err
	}
	return nil
}

func (s *Supervisor) spawn(spec LaunchSpec) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateNotStarted {
		return fmt.Errorf("%w (state %s)", errAlreadyStarted, s.state)
	}
	s.state = StateSpawning

	binary, err := s.env.TranslatePath(spec.BackendExecutable)
	if err != nil {
		return fmt.Errorf("backend executable: %w", err)
	}
	baseDir, err := s.env.TranslatePath(spec.BaseDirectory)
	if err != nil {
		return fmt.Errorf("base directory: %w", err)
	}
	frontend, err := s.env.TranslatePath(spec.FrontendAssets)
	if err != nil {
		return fmt.Errorf("frontend folder: %w", err)
	}

	// Fixed argument order, then the validated passthrough verbatim.
	args := []string{
		baseDir,
		"--port=" + strconv.Itoa(spec.Port),
		"--frontend_folder=" + frontend,
		"--no_browser",
	}
	args = append(args, spec.Passthrough...)

	env := []hostenv.EnvVar{
		{Name: authTokenEnv, Value: s.token},
		{Name: casaPathEnv, Value: spec.CasaPath},
	}
	// LD_LIBRARY_PATH only means something to the Linux loader, which runs
	// the backend either natively or inside the WSL guest.
	if spec.LibraryDir != "" && (runtime.GOOS == "linux" || s.env.Bridged()) {
		if value, ok := s.libraryPath(spec.LibraryDir); ok {
			env = append(env, hostenv.EnvVar{Name: libraryPathEnv, Value: value})
		}
	}

	cmd := s.env.Command(binary, args, env)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("%w: stdout pipe: %v", ErrSpawnFailed, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("%w: stderr pipe: %v", ErrSpawnFailed, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}
	s.logger.Info("backend spawned",
		slog.Int("pid", cmd.Process.Pid),
		slog.Int("port", spec.Port),
		slog.String("environment", s.env.Name()))

	// Wait closes the parent ends of the pipes, so the reaper must not
	// reap until both drains have hit EOF or the tail of the child's
	// output is lost.
	var drained sync.WaitGroup
	drained.Add(2)
	go func() {
		defer drained.Done()
		s.drain("stdout", stdout, s.stdout)
	}()
	go func() {
		defer drained.Done()
		s.drain("stderr", stderr, s.stderr)
	}()

	s.cmd = cmd
	s.waitDone = make(chan struct{})
	go func() {
		drained.Wait()
		s.waitErr = cmd.Wait()
		close(s.waitDone)
	}()
	s.state = StateAwaitingReady
	return nil
}

// libraryPath builds the augmented native-library search path. Translation
// failure is non-fatal: the variable is simply omitted.
func (s *Supervisor) libraryPath(dir string) (string, bool) {
	translated, err := s.env.TranslatePath(dir)
	if err != nil {
		s.logger.Warn("library directory skipped", slog.String("dir", dir), logging.Error(err))
		return "", false
	}
	if existing := os.Getenv(libraryPathEnv); existing != "" && !s.env.Bridged() {
		return translated + string(os.PathListSeparator) + existing, true
	}
	return translated, true
}

// awaitReady polls the backend port until it accepts a connection, the
// process dies, or the timeout elapses. Polling a dead process would waste
// the whole timeout budget, so process exit is checked first on every turn.
func (s *Supervisor) awaitReady(port int) error {
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	start := time.Now()
	var lastErr error

	s.mu.Lock()
	done := s.waitDone
	s.mu.Unlock()

	for time.Since(start) < s.readyTimeout {
		select {
		case <-done:
			s.markExited()
			return fmt.Errorf("%w: %s", ErrBackendExited, exitDetail(s.waitErr))
		default:
		}

		conn, err := net.DialTimeout("tcp", addr, s.connectTimeout)
		if err == nil {
			conn.Close()
			s.mu.Lock()
			if s.state == StateAwaitingReady {
				s.state = StateReady
			}
			s.mu.Unlock()
			s.logger.Info("backend ready",
				slog.Int("port", port),
				slog.Duration("elapsed", time.Since(start)))
			return nil
		}
		lastErr = err
		time.Sleep(s.retryInterval)
	}

	detail := ""
	if lastErr != nil {
		detail = fmt.Sprintf(" (%v)", lastErr)
	}
	return fmt.Errorf("%w: not accepting connections on port %d after %s%s",
		ErrReadinessTimeout, port, time.Since(start).Round(time.Millisecond), detail)
}

// Shutdown kills and reaps the backend. Idempotent: safe before any spawn,
// after a failed spawn, and when called repeatedly or concurrently; only
// one caller performs the kill, the rest observe no handle and return.
func (s *Supervisor) Shutdown() {
	s.mu.Lock()
	cmd := s.cmd
	done := s.waitDone
	s.cmd = nil
	if cmd != nil {
		s.state = StateShuttingDown
	} else if s.state != StateNotStarted {
		s.state = StateTerminated
	}
	s.mu.Unlock()

	if cmd == nil {
		return
	}

	if err := hostenv.Terminate(cmd.Process); err != nil {
		s.logger.Warn("backend termination request failed", logging.Error(err))
	}
	<-done

	s.mu.Lock()
	s.state = StateTerminated
	s.mu.Unlock()
	s.logger.Info("backend terminated")
}

// markExited records that the child died on its own during readiness
// polling; the reaper goroutine has already collected its exit status.
func (s *Supervisor) markExited() {
	s.mu.Lock()
	s.cmd = nil
	s.state = StateTerminated
	s.mu.Unlock()
}

func exitDetail(waitErr error) string {
	if waitErr == nil {
		return "exit status 0"
	}
	return waitErr.Error()
}

func (s *Supervisor) drain(stream string, r io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fmt.Fprintln(w, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		s.logger.Warn("backend output drain degraded",
			slog.String("stream", stream), logging.Error(err))
		// Keep consuming raw bytes so the child cannot block on a full
		// pipe after an overlong line broke the scanner.
		_, _ = io.Copy(w, r)
	}
}
