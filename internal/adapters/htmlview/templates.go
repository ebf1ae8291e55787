package htmlview

const detailTemplate = `<div class="detail-card">
  <span class="short-id">{{.ShortID}}</span>
  <h3>{{.Label}}</h3>
  <p class="description">{{.Description}}</p>
  <div class="badges">{{range .Badges}}<span class="badge">{{.}}</span>{{end}}</div>
</div>
<div class="detail-card">
  <h3>Graph Metrics</h3>
  <div class="metrics-grid">{{range .Metrics}}
    <div class="metric-card"><div class="metric-label">{{.Label}}</div><div class="metric-value">{{.Value}}</div></div>{{end}}
  </div>
</div>{{range .Sections}}
<div class="detail-card">
  <h3>{{.Title}}</h3>
  <div class="detail-section">{{if .IsList}}<ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>{{else}}<p>{{.Text}}</p>{{end}}</div>
</div>{{end}}{{if .HasConnections}}
<div class="detail-card">
  <h3>Connections</h3>{{if .Outgoing}}
  <div class="detail-section">
    <h4>Outgoing ({{len .Outgoing}})</h4>
    <ul>{{range .Outgoing}}<li>{{.Label}} <span class="weight">({{.WeightText}})</span></li>{{end}}</ul>
  </div>{{end}}{{if .Incoming}}
  <div class="detail-section">
    <h4>Incoming ({{len .Incoming}})</h4>
    <ul>{{range .Incoming}}<li>{{.Label}} <span class="weight">({{.WeightText}})</span></li>{{end}}</ul>
  </div>{{end}}
</div>{{end}}
`

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://d3js.org/d3.v7.min.js"></script>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            background: #0a0e27;
            color: #e4e7ef;
            display: flex;
            height: 100vh;
            overflow: hidden;
        }
        #graph { flex: 1; position: relative; }
        #graph svg { display: block; }
        aside {
            width: 380px;
            background: #11152e;
            border-left: 1px solid #1f2542;
            display: flex;
            flex-direction: column;
        }
        .toolbar { padding: 16px; border-bottom: 1px solid #1f2542; }
        .toolbar h1 { font-size: 16px; margin-bottom: 12px; }
        #search-input {
            width: 100%;
            padding: 8px 10px;
            background: #0a0e27;
            border: 1px solid #2a3142;
            border-radius: 6px;
            color: inherit;
        }
        #layer-filters { margin-top: 10px; display: flex; flex-wrap: wrap; gap: 6px; }
        .filter-btn {
            padding: 4px 10px;
            border-radius: 12px;
            border: 1px solid #2a3142;
            background: transparent;
            color: #8b93a6;
            cursor: pointer;
            font-size: 12px;
        }
        .filter-btn.active { color: #fff; border-color: #7c3aed; background: #2a1f5c; }
        #status { margin-top: 10px; font-size: 12px; color: #5a6378; }
        #status.error { color: #ef4444; }
        #details { flex: 1; overflow-y: auto; padding: 16px; }
        .detail-card { background: #161b36; border-radius: 8px; padding: 14px; margin-bottom: 12px; }
        .detail-card h3 { font-size: 14px; margin-bottom: 8px; }
        .detail-card h4 { font-size: 12px; color: #8b93a6; margin: 8px 0 4px; }
        .detail-card ul { padding-left: 18px; font-size: 13px; color: #c3c8d6; }
        .detail-card p { font-size: 13px; color: #c3c8d6; }
        .description { color: #8b93a6 !important; margin-top: 8px; }
        .short-id { font-size: 11px; font-weight: 700; color: #7c3aed; }
        .badges { margin-top: 12px; }
        .badge {
            display: inline-block;
            padding: 2px 8px;
            margin: 0 4px 4px 0;
            border-radius: 10px;
            background: #1f2542;
            font-size: 11px;
        }
        .metrics-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 8px; }
        .metric-card { background: #0a0e27; border-radius: 6px; padding: 8px; }
        .metric-label { font-size: 11px; color: #5a6378; }
        .metric-value { font-size: 16px; font-weight: 600; }
        .weight { color: #5a6378; }
        .empty-state { text-align: center; color: #5a6378; margin-top: 40%; }
        .link { stroke: #2a3142; stroke-opacity: 0.8; }
        .link.highlighted { stroke: #7c3aed; stroke-opacity: 1; }
        .link.dimmed { stroke-opacity: 0.1; }
        .node { cursor: pointer; }
        .node text { fill: #c3c8d6; font-size: 11px; text-anchor: middle; pointer-events: none; }
        .node .node-id { fill: #0a0e27; font-size: 9px; font-weight: 600; }
        .node.selected circle { stroke: #fff; stroke-width: 3; }
        .node.dimmed { opacity: 0.2; }
        .hidden { display: none; }
        .zoom-controls { position: absolute; bottom: 16px; left: 16px; display: flex; gap: 6px; }
        .zoom-controls button {
            width: 32px;
            height: 32px;
            border-radius: 6px;
            border: 1px solid #2a3142;
            background: #11152e;
            color: inherit;
            cursor: pointer;
        }
        .legend {
            position: absolute;
            top: 16px;
            left: 16px;
            background: rgba(17, 21, 46, 0.9);
            border-radius: 8px;
            padding: 10px 14px;
            font-size: 12px;
        }
        .legend-item { display: flex; align-items: center; gap: 8px; margin-top: 4px; }
        .legend-color { width: 12px; height: 12px; border-radius: 50%; }
    </style>
</head>
<body>
    <div id="graph">
        <div class="legend"><strong>Layers</strong><div id="legend-content"></div></div>
        <div class="zoom-controls">
            <button id="zoom-in" title="Zoom in">+</button>
            <button id="zoom-out" title="Zoom out">&minus;</button>
            <button id="zoom-reset" title="Reset zoom">&#8634;</button>
        </div>
    </div>
    <aside>
        <div class="toolbar">
            <h1>{{.Title}}</h1>
            <input id="search-input" type="search" placeholder="Search patterns, ids, aliases">
            <div id="layer-filters"></div>
            <div id="status"></div>
        </div>
        <div id="details"></div>
    </aside>
    <script>
    (function () {
        const graph = {{.GraphJSON}};
        const config = {{.ConfigJSON}};
        const sim = config.simulation;
        const live = config.apiBase !== "";

        function debounce(fn, wait) {
            let timeout;
            return function () {
                const args = arguments;
                clearTimeout(timeout);
                timeout = setTimeout(function () { fn.apply(null, args); }, wait);
            };
        }

        const container = document.getElementById("graph");
        let width = container.clientWidth;
        let height = container.clientHeight;

        const svg = d3.select(container).insert("svg", ":first-child")
            .attr("width", width)
            .attr("height", height);
        const g = svg.append("g");

        const zoom = d3.zoom()
            .scaleExtent([0.1, 4])
            .on("zoom", function (event) { g.attr("transform", event.transform); });
        svg.call(zoom);

        d3.select("#zoom-in").on("click", function () { svg.transition().duration(300).call(zoom.scaleBy, 1.3); });
        d3.select("#zoom-out").on("click", function () { svg.transition().duration(300).call(zoom.scaleBy, 0.7); });
        d3.select("#zoom-reset").on("click", function () { svg.transition().duration(500).call(zoom.transform, d3.zoomIdentity); });

        svg.append("defs").append("marker")
            .attr("id", "arrowhead")
            .attr("viewBox", "0 -5 10 10")
            .attr("refX", 25)
            .attr("refY", 0)
            .attr("markerWidth", 6)
            .attr("markerHeight", 6)
            .attr("orient", "auto")
            .append("path")
            .attr("d", "M0,-5L10,0L0,5")
            .attr("fill", "#2a3142");

        const nodes = graph.nodes.map(function (n) { return Object.assign({}, n); });
        const links = graph.links.map(function (l) { return Object.assign({}, l); });

        const simulation = d3.forceSimulation(nodes)
            .force("link", d3.forceLink(links)
                .id(function (d) { return d.id; })
                .distance(function (d) { return 150 / d.weight; })
                .strength(function (d) { return d.weight / 2; }))
            .force("charge", d3.forceManyBody()
                .strength(sim.chargeStrength)
                .distanceMax(sim.chargeDistanceMax))
            .force("center", d3.forceCenter(width / 2, height / 2))
            .force("collision", d3.forceCollide()
                .radius(function (d) { return d.radius + sim.collisionPadding; })
                .strength(sim.collisionStrength))
            .alphaDecay(sim.alphaDecay);
        let ticks = 0;

        const link = g.append("g").selectAll("line")
            .data(links)
            .enter().append("line")
            .attr("class", "link")
            .attr("marker-end", "url(#arrowhead)")
            .style("stroke-width", function (d) { return 0.5 + d.weight * 2; });

        const node = g.append("g").selectAll("g")
            .data(nodes)
            .enter().append("g")
            .attr("class", "node")
            .call(d3.drag().on("start", dragstarted).on("drag", dragged).on("end", dragended))
            .on("click", function (event, d) {
                event.stopPropagation();
                select(d.id);
            });

        node.append("circle")
            .attr("r", function (d) { return d.radius; })
            .attr("fill", function (d) { return d.color; });
        node.append("text")
            .attr("dy", function (d) { return d.radius + 12; })
            .text(function (d) { return d.label; });
        node.append("text")
            .attr("class", "node-id")
            .attr("dy", 4)
            .text(function (d) { return d.id; });

        simulation.on("tick", function () {
            link.attr("x1", function (d) { return d.source.x; })
                .attr("y1", function (d) { return d.source.y; })
                .attr("x2", function (d) { return d.target.x; })
                .attr("y2", function (d) { return d.target.y; });
            node.attr("transform", function (d) { return "translate(" + d.x + "," + d.y + ")"; });

            ticks++;
            if (ticks > sim.maxTicks || simulation.alpha() < 0.005) {
                simulation.stop();
            }
        });

        function dragstarted(event, d) {
            if (!event.active) {
                ticks = 0;
                simulation.alphaTarget(0.3).restart();
            }
            d.fx = d.x;
            d.fy = d.y;
        }

        function dragged(event, d) {
            d.fx = event.x;
            d.fy = event.y;
        }

        function dragended(event, d) {
            if (!event.active) {
                simulation.alphaTarget(0);
            }
            d.fx = null;
            d.fy = null;
        }

        const legend = d3.select("#legend-content");
        graph.legend.forEach(function (l) {
            const item = legend.append("div").attr("class", "legend-item");
            item.append("div").attr("class", "legend-color").style("background-color", l.color);
            item.append("span").text(l.name);
        });

        const details = document.getElementById("details");
        const status = document.getElementById("status");

        function showEmptyState() {
            details.innerHTML = "";
            const empty = document.createElement("div");
            empty.className = "empty-state";
            empty.textContent = config.emptyText;
            details.appendChild(empty);
        }

        function showError(message) {
            status.textContent = message;
            status.classList.add("error");
        }

        function apply(view) {
            node.classed("hidden", function (d, i) { return !view.nodes[i].visible; })
                .classed("selected", function (d, i) { return view.nodes[i].selected; })
                .classed("dimmed", function (d, i) { return view.nodes[i].dimmed; });
            link.classed("hidden", function (d, i) { return !view.links[i].visible; })
                .classed("highlighted", function (d, i) { return view.links[i].highlighted; })
                .classed("dimmed", function (d, i) { return view.links[i].dimmed; });

            const selected = view.state.selected;
            const html = view.detail || (graph.details && selected ? graph.details[selected] : "");
            if (selected && html) {
                details.innerHTML = html;
            } else {
                showEmptyState();
            }

            status.classList.remove("error");
            status.textContent = view.visibleNodes + " patterns, " + view.visibleLinks + " links";
            d3.selectAll(".filter-btn").classed("active", function () {
                return view.state.layers.indexOf(this.dataset.layer) >= 0;
            });
        }

        const state = {
            selected: config.initial || graph.base.state.selected || "",
            layers: graph.base.state.layers.slice(),
            query: graph.base.state.query
        };
        let pending = null;

        const position = {};
        graph.nodes.forEach(function (n, i) { position[n.id] = i; });

        // localView mirrors the engine for offline pages: selection flags come
        // precomputed, visibility is layer filter and substring search.
        function localView() {
            const source = state.selected ? graph.selections[state.selected] : graph.base;
            const query = state.query.toLowerCase();
            const visible = graph.nodes.map(function (n) {
                const layerPasses = state.layers.length === 0 || state.layers.indexOf(n.layer) >= 0;
                const searchPasses = query === "" || n.search.some(function (t) { return t.indexOf(query) >= 0; });
                return layerPasses && searchPasses;
            });
            const view = {
                state: { selected: state.selected, layers: state.layers.slice(), query: query },
                nodes: source.nodes.map(function (f, i) {
                    return { visible: visible[i], selected: f.selected, dimmed: f.dimmed };
                }),
                links: source.links.map(function (f, i) {
                    const l = graph.links[i];
                    return {
                        visible: visible[position[l.source]] && visible[position[l.target]],
                        highlighted: f.highlighted,
                        dimmed: f.dimmed
                    };
                })
            };
            view.visibleNodes = view.nodes.filter(function (n) { return n.visible; }).length;
            view.visibleLinks = view.links.filter(function (l) { return l.visible; }).length;
            return view;
        }

        function refresh() {
            if (live) {
                request();
            } else {
                apply(localView());
            }
        }

        function request() {
            if (pending) {
                pending.abort();
            }
            pending = new AbortController();
            const params = new URLSearchParams();
            if (state.selected) {
                params.set("select", state.selected);
            }
            state.layers.forEach(function (l) { params.append("layer", l); });
            if (state.query) {
                params.set("q", state.query);
            }
            fetch(config.apiBase + "/api/view?" + params.toString(), { signal: pending.signal })
                .then(function (r) {
                    if (!r.ok) {
                        return r.json().then(function (body) { throw new Error(body.error || r.statusText); });
                    }
                    return r.json();
                })
                .then(apply)
                .catch(function (err) {
                    if (err.name !== "AbortError") {
                        showError(err.message);
                    }
                });
        }

        function select(id) {
            state.selected = id;
            refresh();
        }

        function clearSelection() {
            state.selected = "";
            refresh();
        }

        svg.on("click", clearSelection);
        document.addEventListener("keydown", function (event) {
            if (event.key === "Escape") {
                clearSelection();
            }
        });

        const filters = d3.select("#layer-filters");
        graph.legend.filter(function (l) { return l.count > 0; }).forEach(function (l) {
            filters.append("button")
                .attr("class", "filter-btn")
                .attr("data-layer", l.key)
                .text(l.name)
                .on("click", function () {
                    const i = state.layers.indexOf(l.key);
                    if (i >= 0) {
                        state.layers.splice(i, 1);
                    } else {
                        state.layers.push(l.key);
                    }
                    refresh();
                });
        });

        const search = document.getElementById("search-input");
        search.value = state.query;
        search.addEventListener("input", debounce(function () {
            state.query = search.value;
            refresh();
        }, config.searchDebounceMs));

        window.addEventListener("resize", debounce(function () {
            const newWidth = container.clientWidth;
            const newHeight = container.clientHeight;
            if (newWidth === width && newHeight === height) {
                return;
            }
            width = newWidth;
            height = newHeight;
            svg.attr("width", width).attr("height", height);
            simulation.force("center", d3.forceCenter(width / 2, height / 2)).alpha(0.3).restart();
            ticks = 0;
        }, config.resizeDebounceMs));

        if (live) {
            apply(graph.base);
        } else {
            refresh();
        }
    })();
    </script>
</body>
</html>
`
