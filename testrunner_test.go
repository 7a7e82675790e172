package deckmorph

import "testing"

func TestLoadTestScriptErrors(t *testing.T) {
	if _, err := LoadTestScript([]byte("{not json")); err == nil {
		t.Error("malformed JSON accepted")
	}
	if _, err := LoadTestScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("empty script accepted")
	}
}

func TestRunnerStepsOncePerFrame(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "advance"},
		{"action": "wait", "frames": 3},
		{"action": "back"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	scene := NewScene(DefaultKeyframes(), 960, 600)
	scene.SetTestRunner(runner)

	frames := []struct {
		queued int
		done   bool
	}{
		{1, false}, // advance
		{0, false}, // wait frame 1
		{0, false}, // wait frame 2
		{0, false}, // wait frame 3
		{1, true},  // back, script exhausted
	}
	for i, want := range frames {
		before := len(scene.injectQueue)
		runner.step(scene)
		if got := len(scene.injectQueue) - before; got != want.queued {
			t.Errorf("frame %d queued %d events, want %d", i, got, want.queued)
		}
		if runner.Done() != want.done {
			t.Errorf("frame %d done = %v, want %v", i, runner.Done(), want.done)
		}
	}

	// Further frames are inert.
	runner.step(scene)
	if got := len(scene.injectQueue); got != 2 {
		t.Errorf("queue grew after completion: %d events", got)
	}
}

func TestRunnerClickQueuesMoveThenClick(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 480, "y": 300}]}`))
	if err != nil {
		t.Fatal(err)
	}
	scene := NewScene(DefaultKeyframes(), 960, 600)
	scene.SetTestRunner(runner)

	runner.step(scene)
	if len(scene.injectQueue) != 2 {
		t.Fatalf("got %d events, want move then click", len(scene.injectQueue))
	}
	if scene.injectQueue[0].Kind != EventPointerMove || scene.injectQueue[1].Kind != EventClick {
		t.Errorf("event kinds = %v, %v", scene.injectQueue[0].Kind, scene.injectQueue[1].Kind)
	}
	// Screen center maps to view origin.
	assertNear(t, "view x", scene.injectQueue[1].X, 0)
	assertNear(t, "view y", scene.injectQueue[1].Y, 0)
}

func TestRunnerJumpStartsCameraSwing(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "jump", "target": 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	scene := NewScene(DefaultKeyframes(), 960, 600)
	scene.SetTestRunner(runner)

	runner.step(scene)
	if !scene.Camera().Swinging() {
		t.Error("jump did not start a camera swing")
	}
	if len(scene.injectQueue) != 1 || scene.injectQueue[0].Kind != EventJump || scene.injectQueue[0].Target != 2 {
		t.Errorf("unexpected queue: %+v", scene.injectQueue)
	}
}
