//go:build windows

package timer

import (
	"context"
	"os"
	"os/exec"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	jobObjectBasicAccountingInformation = 1
	hundredNSTicksPerSecond             = 1e7
)

type jobObjectBasicAndIOAccountingInformation struct {
	TotalUserTime             int64
	TotalKernelTime           int64
	ThisPeriodTotalUserTime   int64
	ThisPeriodTotalKernelTime int64
	TotalPageFaultCount       uint32
	TotalProcesses            uint32
	ActiveProcesses           uint32
	TotalTerminatedProcesses  uint32
}

// jobTracker owns a Job Object and the suspended child's main thread handle
// for the lifetime of one timed run, so CPU accounting covers the whole
// process tree the child may spawn rather than just the direct child.
type jobTracker struct {
	job    windows.Handle
	thread windows.Handle
}

func newJobTracker(pid uint32) (*jobTracker, error) {
	job, err := windows.CreateJobObject(nil, nil)
	if err != nil {
		return nil, err
	}

	hProcess, err := windows.OpenProcess(windows.SPECIFIC_RIGHTS_ALL, false, pid)
	if err != nil {
		windows.CloseHandle(job)
		return nil, err
	}
	assignErr := windows.AssignProcessToJobObject(job, hProcess)
	windows.CloseHandle(hProcess)
	if assignErr != nil {
		windows.CloseHandle(job)
		return nil, assignErr
	}

	thread, err := mainThreadHandle(pid)
	if err != nil {
		windows.CloseHandle(job)
		return nil, err
	}

	return &jobTracker{job: job, thread: thread}, nil
}

func (t *jobTracker) resume() error {
	_, err := windows.ResumeThread(t.thread)
	return err
}

func (t *jobTracker) accounting() (jobObjectBasicAndIOAccountingInformation, error) {
	var info jobObjectBasicAndIOAccountingInformation
	err := windows.QueryInformationJobObject(t.job,
		jobObjectBasicAccountingInformation,
		uintptr(unsafe.Pointer(&info)),
		uint32(unsafe.Sizeof(info)), nil)
	return info, err
}

// close terminates the job (and any surviving children) and releases both
// handles. Safe to call after the tracked process has already exited.
func (t *jobTracker) close() {
	windows.TerminateJobObject(t.job, 0)
	windows.CloseHandle(t.job)
	windows.CloseHandle(t.thread)
}

// Run spawns argv suspended inside a fresh Job Object so that CPU time
// attributable to the whole process tree (not just the direct child) is
// captured, then resumes it and waits.
func Run(ctx context.Context, argv []string, showOutput bool, extraEnv []string) (Result, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = nil
	if showOutput {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	if len(extraEnv) > 0 {
		cmd.Env = append(cmd.Environ(), extraEnv...)
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags:    windows.CREATE_NEW_PROCESS_GROUP | windows.CREATE_SUSPENDED,
		NoInheritHandles: false,
	}

	if err := cmd.Start(); err != nil {
		return Result{}, err
	}

	tracker, err := newJobTracker(uint32(cmd.Process.Pid))
	if err != nil {
		return Result{}, err
	}
	defer tracker.close()

	start := time.Now()
	if err := tracker.resume(); err != nil {
		return Result{}, err
	}

	runErr := cmd.Wait()
	wall := time.Since(start)

	exitCode := 0
	if runErr != nil {
		exitErr, ok := runErr.(*exec.ExitError)
		if !ok {
			return Result{}, runErr
		}
		exitCode = exitErr.ExitCode()
	}

	info, err := tracker.accounting()
	if err != nil {
		return Result{}, err
	}

	return Result{
		WallSeconds:   wall.Seconds(),
		UserSeconds:   float64(info.TotalUserTime) / hundredNSTicksPerSecond,
		SystemSeconds: float64(info.TotalKernelTime) / hundredNSTicksPerSecond,
		ExitCode:      exitCode,
	}, nil
}

// mainThreadHandle walks a toolhelp32 thread snapshot to find the first
// thread owned by pid, the one created suspended by CREATE_SUSPENDED.
func mainThreadHandle(pid uint32) (windows.Handle, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPTHREAD, 0)
	if err != nil {
		return windows.InvalidHandle, err
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ThreadEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	for err = windows.Thread32First(snapshot, &entry); err == nil; err = windows.Thread32Next(snapshot, &entry) {
		if entry.OwnerProcessID != pid {
			continue
		}
		return windows.OpenThread(windows.THREAD_SUSPEND_RESUME, false, entry.ThreadID)
	}
	return windows.InvalidHandle, err
}
