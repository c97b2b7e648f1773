package hadolint

import (
	"bytes"
	"context"
	"io"
	"sync"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"go.trai.ch/dummit/internal/core/domain"
	"go.trai.ch/dummit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// EngineAPI is the subset of the Docker Engine client the linter uses.
type EngineAPI interface {
	ImageInspect(ctx context.Context, imageID string, opts ...client.ImageInspectOption) (image.InspectResponse, error)
	ImagePull(ctx context.Context, ref string, options image.PullOptions) (io.ReadCloser, error)
	ContainerCreate(
		ctx context.Context,
		config *container.Config,
		hostConfig *container.HostConfig,
		networkingConfig *network.NetworkingConfig,
		platform *ocispec.Platform,
		containerName string,
	) (container.CreateResponse, error)
	ContainerAttach(ctx context.Context, containerID string, options container.AttachOptions) (types.HijackedResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerWait(
		ctx context.Context,
		containerID string,
		condition container.WaitCondition,
	) (<-chan container.WaitResponse, <-chan error)
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
}

// EngineLinter runs the linter container through the Docker Engine API.
// The client is created on first use from the standard DOCKER_* environment.
type EngineLinter struct {
	newClient func() (EngineAPI, error)

	once      sync.Once
	client    EngineAPI
	clientErr error
}

// NewEngineLinter creates an EngineLinter backed by the environment's Docker daemon.
func NewEngineLinter() *EngineLinter {
	return NewEngineLinterWithClient(func() (EngineAPI, error) {
		return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	})
}

// NewEngineLinterWithClient creates an EngineLinter using newClient to reach the daemon.
func NewEngineLinterWithClient(newClient func() (EngineAPI, error)) *EngineLinter {
	return &EngineLinter{newClient: newClient}
}

func (l *EngineLinter) engine() (EngineAPI, error) {
	l.once.Do(func() {
		l.client, l.clientErr = l.newClient()
	})
	if l.clientErr != nil {
		return nil, zerr.Wrap(l.clientErr, domain.ErrLinterInvocation.Error())
	}
	return l.client, nil
}

// Lint creates a one-shot container from opts.Image, streams the Dockerfile to
// its stdin and collects the demultiplexed output. The container is always removed.
func (l *EngineLinter) Lint(
	ctx context.Context,
	dockerfile *domain.Dockerfile,
	opts ports.LintOptions,
	stderr io.Writer,
) ([]domain.Diagnostic, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	if stderr == nil {
		stderr = io.Discard
	}

	api, err := l.engine()
	if err != nil {
		return nil, err
	}

	if err := ensureImage(ctx, api, opts.Image); err != nil {
		return nil, err
	}

	created, err := api.ContainerCreate(ctx, &container.Config{
		Image:        opts.Image,
		Cmd:          lintCommand,
		AttachStdin:  true,
		AttachStdout: true,
		AttachStderr: true,
		OpenStdin:    true,
		StdinOnce:    true,
	}, &container.HostConfig{}, nil, nil, "")
	if err != nil {
		return nil, invocationError(err, "create", opts.Image)
	}
	defer func() {
		_ = api.ContainerRemove(context.WithoutCancel(ctx), created.ID, container.RemoveOptions{Force: true})
	}()

	stream, err := api.ContainerAttach(ctx, created.ID, container.AttachOptions{
		Stream: true,
		Stdin:  true,
		Stdout: true,
		Stderr: true,
	})
	if err != nil {
		return nil, invocationError(err, "attach", opts.Image)
	}
	defer stream.Close()
	stop := context.AfterFunc(ctx, stream.Close)
	defer stop()

	if err := api.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return nil, invocationError(err, "start", opts.Image)
	}

	var (
		stdout bytes.Buffer
		g      errgroup.Group
	)
	g.Go(func() error {
		if _, err := stream.Conn.Write(dockerfile.Bytes()); err != nil {
			return err
		}
		return stream.CloseWrite()
	})
	g.Go(func() error {
		_, err := stdcopy.StdCopy(&stdout, stderr, stream.Reader)
		return err
	})
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return nil, invocationError(err, "stream", opts.Image)
	}

	exitCode, err := wait(ctx, api, created.ID)
	if err != nil {
		return nil, invocationError(err, "wait", opts.Image)
	}

	diags, err := ParseOutput(stdout.Bytes())
	switch {
	case exitCode != 0 && (err != nil || len(bytes.TrimSpace(stdout.Bytes())) == 0):
		return nil, zerr.With(
			zerr.With(domain.ErrLinterInvocation, "exit_code", exitCode),
			"image", opts.Image,
		)
	case err != nil:
		return nil, err
	}

	return diags, nil
}

// ensureImage pulls ref unless the daemon already has it.
func ensureImage(ctx context.Context, api EngineAPI, ref string) error {
	_, err := api.ImageInspect(ctx, ref)
	if err == nil {
		return nil
	}
	if !cerrdefs.IsNotFound(err) {
		return invocationError(err, "inspect", ref)
	}

	progress, err := api.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return invocationError(err, "pull", ref)
	}
	defer func() { _ = progress.Close() }()

	if _, err := io.Copy(io.Discard, progress); err != nil {
		return invocationError(err, "pull", ref)
	}
	return nil
}

func wait(ctx context.Context, api EngineAPI, id string) (int64, error) {
	statusCh, errCh := api.ContainerWait(ctx, id, container.WaitConditionNotRunning)
	select {
	case err := <-errCh:
		return 0, err
	case status := <-statusCh:
		if status.Error != nil {
			return status.StatusCode, zerr.New(status.Error.Message)
		}
		return status.StatusCode, nil
	}
}

func invocationError(err error, step, ref string) error {
	return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrLinterInvocation.Error()), "step", step), "image", ref)
}
