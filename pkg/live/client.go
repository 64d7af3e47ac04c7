package live

// indexShell is the HTML page served at /. It carries the page title, the
// current tree snapshot, and the patch client.
const indexShell = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
<div id="graft-root">%s</div>
<script>%s</script>
</body>
</html>
`

// clientJS is the embedded patch client. It mirrors pkg/patch: a frame is
// a uvarint mutation count followed by mutations, each an opcode byte, a
// uvarint index path, and opcode-specific fields. Opcode values match
// dom.MutationOp.
const clientJS = `(function () {
  var mount = document.getElementById("graft-root");
  var dec = new TextDecoder();

  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/live");
    ws.binaryType = "arraybuffer";
    ws.onmessage = function (ev) {
      if (typeof ev.data === "string") {
        mount.innerHTML = ev.data;
        return;
      }
      apply(new Uint8Array(ev.data));
    };
    ws.onclose = function () { setTimeout(connect, 1000); };
  }

  function apply(buf) {
    var pos = 0;
    function uvarint() {
      var v = 0, shift = 0;
      for (;;) {
        var b = buf[pos++];
        v += (b & 127) * Math.pow(2, shift);
        if (b < 128) return v;
        shift += 7;
      }
    }
    function svarint() {
      var u = uvarint();
      return u % 2 === 1 ? -((u + 1) / 2) : u / 2;
    }
    function str() {
      var n = uvarint();
      var s = dec.decode(buf.subarray(pos, pos + n));
      pos += n;
      return s;
    }
    function parse(html) {
      var t = document.createElement("template");
      t.innerHTML = html;
      return t.content.firstChild;
    }

    var root = mount.firstChild;
    var count = uvarint();
    for (var i = 0; i < count; i++) {
      var op = buf[pos++];
      var plen = uvarint();
      var t = root;
      for (var j = 0; j < plen; j++) t = t.childNodes[uvarint()];
      var idx;
      switch (op) {
        case 1:
          svarint();
          t.appendChild(parse(str()));
          break;
        case 2:
          idx = svarint();
          t.insertBefore(parse(str()), t.childNodes[idx] || null);
          break;
        case 3:
          idx = svarint();
          t.replaceChild(parse(str()), t.childNodes[idx]);
          break;
        case 4:
          idx = svarint();
          t.removeChild(t.childNodes[idx]);
          break;
        case 5:
          while (t.firstChild) t.removeChild(t.firstChild);
          break;
        case 6:
          idx = svarint();
          t.childNodes[idx].data = str();
          break;
        case 7:
          t.setAttribute(str(), str());
          break;
        case 8:
          t.removeAttribute(str());
          break;
      }
    }
  }

  connect();
})();
`
