package spectate

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/render"
)

func TestEncode(t *testing.T) {
	b := render.NewBatch()
	b.Set(render.LayerActors, core.Pt(3, 4), core.RGB{R: 255, G: 16, B: 0}, core.RGBBlack, '@')
	b.Print(render.LayerHUD, core.Pt(0, 0), "HP 10/10", core.RGBWhite)

	f := Encode(7, b)
	if f.Seq != 7 {
		t.Errorf("seq %d", f.Seq)
	}
	actors := f.Layers[render.LayerActors.String()]
	if len(actors) != 1 || actors[0].Glyph != "@" || actors[0].Fg != "#ff1000" || actors[0].X != 3 {
		t.Errorf("actors %+v", actors)
	}
	hud := f.Layers[render.LayerHUD.String()]
	if len(hud) != 1 || hud[0].Text != "HP 10/10" {
		t.Errorf("hud %+v", hud)
	}
	if cells, ok := f.Layers[render.LayerMap.String()]; !ok || len(cells) != 0 {
		t.Errorf("empty map layer should be present and empty: %+v", cells)
	}
}

func TestViewerReceivesFrames(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Viewers() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("viewer never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	b := render.NewBatch()
	b.Set(render.LayerMap, core.Pt(1, 1), core.RGBFloor, core.RGBBlack, '.')
	if err := hub.Present(b); err != nil {
		t.Fatal(err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var f Frame
	if err := json.Unmarshal(msg, &f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.Seq != 1 || len(f.Layers[render.LayerMap.String()]) != 1 {
		t.Errorf("unexpected frame %+v", f)
	}

	hub.Close()
	if hub.Viewers() != 0 {
		t.Error("close left viewers registered")
	}
}

func TestPresentWithoutViewers(t *testing.T) {
	hub := NewHub(nil)
	if err := hub.Present(render.NewBatch()); err != nil {
		t.Fatal(err)
	}
}
