package browser

import (
	"testing"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantURL string
	}{
		{
			name:    "absolute path",
			target:  "/tmp/graph.html",
			wantURL: "file:///tmp/graph.html",
		},
		{
			name:    "path with spaces",
			target:  "/tmp/My Graphs/graph.html",
			wantURL: "file:///tmp/My%20Graphs/graph.html",
		},
		{
			name:    "http url",
			target:  "http://localhost:8080/",
			wantURL: "http://localhost:8080/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildURL(tt.target)
			if err != nil {
				t.Fatalf("BuildURL() error = %v", err)
			}
			if got != tt.wantURL {
				t.Errorf("BuildURL() = %q, want %q", got, tt.wantURL)
			}
		})
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantArgs []string
		wantErr  bool
	}{
		{goos: "darwin", wantArgs: []string{"open", "file:///tmp/g.html"}},
		{goos: "linux", wantArgs: []string{"xdg-open", "file:///tmp/g.html"}},
		{goos: "windows", wantArgs: []string{"cmd", "/c", "start", "", "file:///tmp/g.html"}},
		{goos: "plan9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			o := &Opener{goos: tt.goos}
			cmd, err := o.Command("/tmp/g.html")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Command() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("Args = %q, want %q", cmd.Args, tt.wantArgs)
			}
			for i := range tt.wantArgs {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Errorf("Args[%d] = %q, want %q", i, cmd.Args[i], tt.wantArgs[i])
				}
			}
		})
	}
}
