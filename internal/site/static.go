package site

// cssContent is the stylesheet for every page. Colours and fonts come from
// the custom properties set on <body>.
const cssContent = `:root {
  --primary: #7819b1;
  --text: #222;
  --muted: #6b6b6b;
  --bg: #fff;
  --font-heading: "Montserrat", sans-serif;
  --font-body: "Lato", sans-serif;
  --header-height: 72px;
}

* { box-sizing: border-box; }
body { margin: 0; color: var(--text); background: var(--bg); font-family: var(--font-body), sans-serif; line-height: 1.6; }
h1, h2, h3 { font-family: var(--font-heading), sans-serif; font-weight: 600; }
a { color: var(--primary); }
img { max-width: 100%; display: block; }

.site-header { position: sticky; top: 0; z-index: 10; display: flex; align-items: center; justify-content: space-between; height: var(--header-height); padding: 0 2rem; background: var(--bg); border-bottom: 1px solid #eee; }
.logo img { height: 40px; }
.logo-mobile { display: none; }
.site-nav a { margin-left: 1.5rem; text-decoration: none; color: var(--text); text-transform: uppercase; letter-spacing: .08em; font-size: .85rem; }
.site-nav a.current { color: var(--primary); }
.menu-toggle { display: none; background: none; border: 0; cursor: pointer; }
.menu-toggle span { display: block; width: 24px; height: 2px; margin: 5px 0; background: var(--text); }

.hero { position: relative; height: calc(100vh - var(--header-height)); overflow: hidden; }
.hero .slide { position: absolute; inset: 0; margin: 0; opacity: 0; transition: opacity 1s; }
.hero .slide.is-current { opacity: 1; }
.hero .slide img { width: 100%; height: 100%; object-fit: cover; }
.hero figcaption { position: absolute; left: 2rem; bottom: 3rem; font-size: 2rem; font-family: var(--font-heading), sans-serif; }

.section-us, .section-work, .contact-boxes, .story, .stats, .leadership, .values, .services, .projects, .project, .contact, .not-found { max-width: 1200px; margin: 0 auto; padding: 3rem 2rem; }
.tabs button { background: none; border: 0; border-bottom: 2px solid transparent; padding: .5rem 1rem; cursor: pointer; font: inherit; }
.tabs button[aria-selected="true"] { border-color: var(--primary); color: var(--primary); }
.tab-panel { display: none; }
.tab-panel.is-current { display: block; }
.motto { font-style: italic; color: var(--muted); }
.leadership-strip { display: flex; gap: 1rem; }
.leadership-strip img { width: 120px; height: 120px; object-fit: cover; border-radius: 50%; }

.work-grid, .project-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1.5rem; }
.work-item, .project-tile { position: relative; display: block; overflow: hidden; color: #fff; text-decoration: none; }
.work-item img, .project-tile img { width: 100%; aspect-ratio: 4 / 3; object-fit: cover; transition: transform .4s, filter .4s; }
.work-title, .project-title { position: absolute; left: 1rem; bottom: 1rem; font-family: var(--font-heading), sans-serif; font-size: 1.25rem; }
.project-category { font-size: .8rem; text-transform: uppercase; letter-spacing: .1em; }
.project-tile .project-category { position: absolute; left: 1rem; top: 1rem; }
.project-tile[hidden] { display: none; }

.contact-boxes { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 1rem; }
.contact-box { display: flex; flex-direction: column; padding: 2rem; border: 1px solid #ddd; color: var(--text); text-decoration: none; transition: background .3s, color .3s; }
.box-header { text-transform: uppercase; font-size: .8rem; letter-spacing: .1em; color: var(--muted); }
.box-title { font-size: 1.5rem; font-family: var(--font-heading), sans-serif; }

.category-filter a { margin-right: 1rem; text-decoration: none; color: var(--muted); }
.category-filter a.is-current { color: var(--primary); border-bottom: 2px solid var(--primary); }

.stats { display: flex; flex-wrap: wrap; gap: 2rem; }
.stat strong { display: block; font-size: 2.5rem; color: var(--primary); }
.leader { margin-bottom: 2rem; }
.leader img { width: 200px; }
.position { color: var(--muted); }

.project-facts { display: grid; grid-template-columns: max-content 1fr; gap: .25rem 1.5rem; }
.project-facts dt { font-weight: 600; }
.gallery { display: grid; grid-template-columns: repeat(auto-fill, minmax(320px, 1fr)); gap: 1rem; margin-top: 2rem; }
.related a { display: block; }

.contact-form { display: grid; gap: 1rem; max-width: 640px; }
.contact-form label { display: grid; gap: .25rem; }
.contact-form input, .contact-form textarea { font: inherit; padding: .6rem; border: 1px solid #ccc; }
.contact-form button { justify-self: start; padding: .75rem 2rem; border: 0; background: var(--primary); color: #fff; font: inherit; cursor: pointer; }
.contact-form .hp { position: absolute; left: -10000px; }
.form-status.is-error { color: #b00020; }

.site-footer { padding: 2rem; border-top: 1px solid #eee; color: var(--muted); font-size: .9rem; }
.site-footer address { font-style: normal; }

@media (min-width: 1025px) {
  .work-item:hover img, .project-tile:hover img { transform: scale(1.05); filter: brightness(.8); }
  .contact-box:hover { background: var(--primary); color: #fff; }
}

@media (max-width: 1024px) {
  .logo-desktop { display: none; }
  .logo-mobile { display: block; }
  .menu-toggle { display: block; }
  .site-nav { display: none; position: absolute; top: var(--header-height); left: 0; right: 0; padding: 1rem 2rem; background: var(--bg); }
  .site-nav.is-open { display: flex; flex-direction: column; }
  .site-nav a { margin: .5rem 0; }
  .work-item.is-active img, .project-tile.is-active img { transform: scale(1.05); filter: brightness(.8); }
  .contact-box.is-active { background: var(--primary); color: #fff; }
}
`

// scrollParamsPlaceholder is replaced with the JSON tracker parameters
// when script.js is written.
const scrollParamsPlaceholder = "__SCROLL_PARAMS__"

// jsContent drives the navigation menu, hero slideshow, home tabs, project
// category filter, contact form and the scroll-active tracker. The tracker
// follows the same rule as internal/scroll: below the breakpoint, the
// visible element whose top is nearest the trigger line and strictly
// within the threshold is active, ties going to the lowest ordinal.
const jsContent = `(function () {
  "use strict";
  var params = ` + scrollParamsPlaceholder + `;

  // Navigation menu.
  var toggle = document.getElementById("menu-toggle");
  var nav = document.getElementById("site-nav");
  if (toggle && nav) {
    toggle.addEventListener("click", function () {
      var open = nav.classList.toggle("is-open");
      toggle.setAttribute("aria-expanded", open ? "true" : "false");
    });
  }

  // Hero slideshow.
  var slides = document.querySelectorAll(".hero .slide");
  if (slides.length > 1) {
    var current = 0;
    setInterval(function () {
      slides[current].classList.remove("is-current");
      current = (current + 1) % slides.length;
      slides[current].classList.add("is-current");
    }, 6000);
  }

  // Home page tabs.
  document.querySelectorAll(".tabs [data-tab]").forEach(function (btn) {
    btn.addEventListener("click", function () {
      var id = btn.getAttribute("data-tab");
      document.querySelectorAll(".tabs [data-tab]").forEach(function (b) {
        b.setAttribute("aria-selected", b === btn ? "true" : "false");
      });
      document.querySelectorAll(".tab-panel").forEach(function (p) {
        p.classList.toggle("is-current", p.getAttribute("data-tab") === id);
      });
    });
  });

  // Project category filter, reflected in ?category=.
  var filter = document.getElementById("category-filter");
  function applyFilter(category) {
    document.querySelectorAll(".project-tile").forEach(function (tile) {
      tile.hidden = category !== "" && tile.getAttribute("data-category") !== category;
    });
    if (filter) {
      filter.querySelectorAll("a").forEach(function (a) {
        a.classList.toggle("is-current", a.getAttribute("data-category") === category);
      });
    }
  }
  if (filter) {
    applyFilter(new URLSearchParams(location.search).get("category") || "");
    filter.addEventListener("click", function (e) {
      var a = e.target.closest("a[data-category]");
      if (!a) return;
      e.preventDefault();
      var category = a.getAttribute("data-category");
      history.pushState(null, "", category ? "?category=" + encodeURIComponent(category) : location.pathname);
      applyFilter(category);
      recompute();
    });
    window.addEventListener("popstate", function () {
      applyFilter(new URLSearchParams(location.search).get("category") || "");
    });
  }

  // Contact form.
  var form = document.getElementById("contact-form");
  if (form) {
    var status = document.getElementById("form-status");
    form.addEventListener("submit", function (e) {
      e.preventDefault();
      var data = {};
      new FormData(form).forEach(function (v, k) { data[k] = v; });
      status.textContent = "Sending...";
      status.classList.remove("is-error");
      fetch(form.action, {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify(data)
      }).then(function (resp) {
        return resp.json().then(function (body) {
          status.textContent = body.message;
          status.classList.toggle("is-error", !resp.ok);
          if (resp.ok) form.reset();
        });
      }).catch(function () {
        status.textContent = "Error sending email";
        status.classList.add("is-error");
      });
    });
  }

  // Scroll-active tracker.
  var registry = {};
  document.querySelectorAll("[data-index]").forEach(function (el) {
    registry[Number(el.getAttribute("data-index"))] = el;
  });
  var active = null;

  function setActive(index) {
    if (index === active) return;
    if (active !== null && registry[active]) registry[active].classList.remove("is-active");
    active = index;
    if (active !== null && registry[active]) registry[active].classList.add("is-active");
  }

  function recompute() {
    var width = window.innerWidth, height = window.innerHeight;
    if (width > params.breakpoint) return;
    var trigger = height * params.triggerFraction;
    var best = null, bestDist = 0;
    Object.keys(registry).map(Number).sort(function (a, b) { return a - b; }).forEach(function (index) {
      var el = registry[index];
      if (el.hidden || !el.isConnected) return;
      var r = el.getBoundingClientRect();
      if (!(r.bottom > 0 && r.top < height)) return;
      var dist = Math.abs(r.top - trigger);
      if (dist >= params.threshold) return;
      if (best === null || dist < bestDist) {
        best = index;
        bestDist = dist;
      }
    });
    setActive(best);
  }

  if (Object.keys(registry).length > 0) {
    window.addEventListener("scroll", recompute, { passive: true });
    window.addEventListener("resize", recompute);
    recompute();
  }

  // Live reload while running "archsite serve".
  if (document.documentElement.hasAttribute("data-livereload")) {
    var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/__livereload");
    ws.onmessage = function () { location.reload(); };
  }
})();
`
