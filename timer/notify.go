package timer

import (
	"os/exec"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/ayoisaiah/arranger/internal/models"
)

const sampleRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// notifyCmd sends a desktop notification and plays the completion chime.
func (t *Timer) notifyCmd(sess *models.Session) tea.Cmd {
	notify, sound := t.Opts.Timer.Notify, t.Opts.Timer.Sound
	if !notify && !sound {
		return nil
	}

	title := sess.Mode.Label() + " session is finished"

	msg := "Time for a break!"
	if sess.Mode == models.Relax {
		msg = "Time to get back to work!"
	} else if sess.Task != models.NoTask {
		msg = sess.Task + " is done. Time for a break!"
	}

	return func() tea.Msg {
		if notify {
			if err := beeep.Notify(title, msg, ""); err != nil {
				log.Debug().Err(err).Msg("unable to display notification")
			}
		}

		if sound {
			if err := chime(); err != nil {
				log.Debug().Err(err).Msg("unable to play sound")
			}
		}

		return nil
	}
}

// chime plays two short tones and blocks until they finish.
func chime() error {
	bufferSize := 10

	speakerOnce.Do(func() {
		speakerErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	if speakerErr != nil {
		return speakerErr
	}

	low, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return err
	}

	high, err := generators.SineTone(sampleRate, 1320)
	if err != nil {
		return err
	}

	note := sampleRate.N(180 * time.Millisecond)

	done := make(chan struct{})

	speaker.Play(beep.Seq(
		beep.Take(note, low),
		beep.Silence(sampleRate.N(60*time.Millisecond)),
		beep.Take(note, high),
		beep.Callback(func() {
			close(done)
		}),
	))

	<-done

	return nil
}

// sessionCmd runs the configured post-session command.
func (t *Timer) sessionCmd() tea.Cmd {
	if t.Opts.Timer.Cmd == "" {
		return nil
	}

	sessionCmd := t.Opts.Timer.Cmd

	return func() tea.Msg {
		return cmdDoneMsg{err: runSessionCmd(sessionCmd)}
	}
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	log.Debug().Str("cmd", name).Strs("args", args).Msg("running session command")

	cmd := exec.Command(name, args...)

	return cmd.Run()
}
